package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "viscrypt",
	Short: "Visual cryptography share generator",
	Long: `viscrypt splits a black/white message image into two noise-like share
images. Printing both shares on transparencies and stacking them reveals
the message to the naked eye at twice the original resolution.`,
}

var (
	flagConfig  string
	flagVerbose int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.viscrypt/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(overlayCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return home + "/.viscrypt/config.yaml"
}

// setupLogging installs the default slog handler. The -v count overrides the
// configured level: 0 keeps cfgLevel, one step per -v up to debug.
func setupLogging(cfgLevel string) {
	level := slog.LevelWarn
	switch strings.ToLower(cfgLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	switch flagVerbose {
	case 0:
	case 1:
		level = slog.LevelWarn
	case 2:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
