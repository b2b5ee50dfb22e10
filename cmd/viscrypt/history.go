package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ageron/visual-crypto/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent encode runs",
	RunE:  runHistory,
}

var flagHistoryCount int

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryCount, "count", "n", 20, "number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel)

	if cfg.HistoryDB == "" {
		fmt.Println("History is disabled. Set history_db in the config file to enable it.")
		return nil
	}
	log, err := history.Open(expandHome(cfg.HistoryDB))
	if err != nil {
		return err
	}
	defer log.Close()

	runs, err := log.Recent(flagHistoryCount)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No encode runs recorded.")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %4dx%-4d  %-8s  %s -> %s\n",
			r.Time.Local().Format(time.DateTime), r.Width, r.Height,
			r.SecretState, r.Message, r.Ciphered)
	}
	return nil
}
