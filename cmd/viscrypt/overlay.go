package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ageron/visual-crypto/internal/display"
	"github.com/ageron/visual-crypto/internal/imaging"
	"github.com/ageron/visual-crypto/internal/vcrypto"
)

var overlayCmd = &cobra.Command{
	Use:   "overlay <share-a> <share-b>",
	Short: "Stack two share images and show the reconstructed message",
	Long: `overlay computes the boolean-OR composition of two share images,
simulating what the eye sees when both transparencies are stacked. With
matching shares the message appears as solid blocks against a noise
texture.`,
	Args: cobra.ExactArgs(2),
	RunE: runOverlay,
}

var flagOverlayOut string

func init() {
	overlayCmd.Flags().StringVarP(&flagOverlayOut, "output", "o", "", "save the overlay image to this path (default: preview in terminal)")
}

func runOverlay(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel)

	a, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	b, err := loadGrid(args[1])
	if err != nil {
		return err
	}

	out, err := vcrypto.Overlay(a, b)
	if err != nil {
		return fmt.Errorf("overlaying %s and %s: %w", args[0], args[1], err)
	}

	if flagOverlayOut != "" {
		slog.Debug("saving overlay image", "path", flagOverlayOut)
		return imaging.Save(flagOverlayOut, imaging.ToImage(out))
	}
	if ok, cols, rows := display.Fits(out); !ok {
		slog.Warn("overlay exceeds terminal size, output will wrap",
			"grid", fmt.Sprintf("%dx%d", out.Width(), out.Height()),
			"terminal", fmt.Sprintf("%dx%d", cols, rows))
	}
	display.Render(os.Stdout, out)
	return nil
}
