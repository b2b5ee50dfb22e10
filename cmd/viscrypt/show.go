package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ageron/visual-crypto/internal/display"
	"github.com/ageron/visual-crypto/internal/grid"
	"github.com/ageron/visual-crypto/internal/imaging"
)

var showCmd = &cobra.Command{
	Use:   "show <image>",
	Short: "Preview a share or message image in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel)

	g, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	if ok, cols, rows := display.Fits(g); !ok {
		slog.Warn("image exceeds terminal size, output will wrap",
			"grid", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
			"terminal", fmt.Sprintf("%dx%d", cols, rows))
	}
	display.Render(os.Stdout, g)
	return nil
}

// loadGrid decodes an image file into a binary ink grid.
func loadGrid(path string) (*grid.Grid, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	g, err := imaging.ToGrid(img, imaging.DefaultCutoff)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return g, nil
}
