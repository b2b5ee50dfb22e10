package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ageron/visual-crypto/internal/config"
	"github.com/ageron/visual-crypto/internal/display"
	"github.com/ageron/visual-crypto/internal/grid"
	"github.com/ageron/visual-crypto/internal/history"
	"github.com/ageron/visual-crypto/internal/imaging"
	"github.com/ageron/visual-crypto/internal/vcrypto"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Generate secret and ciphered shares from a message image",
	RunE:  runEncode,
}

var (
	flagMessage  string
	flagSecret   string
	flagCiphered string
	flagResize   string
	flagPrepared string
	flagDisplay  bool
	flagSeed     uint64
)

func init() {
	encodeCmd.Flags().StringVarP(&flagMessage, "message", "m", "", "message image (required)")
	encodeCmd.Flags().StringVarP(&flagSecret, "secret", "s", "", "secret share image (created if it does not exist)")
	encodeCmd.Flags().StringVarP(&flagCiphered, "ciphered", "c", "", "ciphered share image (to be generated)")
	encodeCmd.Flags().StringVarP(&flagResize, "resize", "r", "", "resize message to WIDTH,HEIGHT before encoding")
	encodeCmd.Flags().StringVarP(&flagPrepared, "prepared", "p", "", "save the prepared (resized, binarized) message image to this path")
	encodeCmd.Flags().BoolVarP(&flagDisplay, "display", "d", false, "preview the prepared message and both shares in the terminal")
	encodeCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "seed for reproducible share generation (0 = random)")
	encodeCmd.MarkFlagRequired("message")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel)

	secretPath := cfg.Secret
	if flagSecret != "" {
		secretPath = flagSecret
	}
	cipheredPath := cfg.Ciphered
	if flagCiphered != "" {
		cipheredPath = flagCiphered
	}

	slog.Debug("loading message image", "path", flagMessage)
	msgImg, err := imaging.Load(flagMessage)
	if err != nil {
		return fmt.Errorf("loading message image: %w", err)
	}

	width := msgImg.Bounds().Dx()
	height := msgImg.Bounds().Dy()
	if flagResize != "" {
		width, height, err = parseSize(flagResize)
		if err != nil {
			return err
		}
	}

	// An existing secret share is reused as-is when it already covers the
	// target, and extended (preserving every overlapping block) when the
	// message outgrew it. Only a created or enlarged secret is written back.
	var existing *grid.Grid
	secretState := "created"
	if _, err := os.Stat(secretPath); err == nil {
		slog.Debug("loading secret image", "path", secretPath)
		secretImg, err := imaging.Load(secretPath)
		if err != nil {
			return fmt.Errorf("loading secret image: %w", err)
		}
		existing, err = imaging.ToGrid(secretImg, imaging.DefaultCutoff)
		if err != nil {
			return fmt.Errorf("reading secret image: %w", err)
		}
		if existing.Width() >= 2*width && existing.Height() >= 2*height {
			secretState = "reused"
		} else {
			slog.Info("enlarging secret share to fit message size",
				"have", fmt.Sprintf("%dx%d", existing.Width(), existing.Height()),
				"need", fmt.Sprintf("%dx%d", 2*width, 2*height))
			secretState = "enlarged"
		}
	} else {
		slog.Info("generating secret share", "path", secretPath)
	}

	src := vcrypto.NewSource()
	if flagSeed != 0 {
		src = vcrypto.NewSeededSource(flagSeed)
	}
	secret, err := vcrypto.GenerateSecret(width, height, existing, src)
	if err != nil {
		return fmt.Errorf("generating secret share: %w", err)
	}

	prepared, err := imaging.PrepareMessage(msgImg, width, height, cfg.Threshold)
	if err != nil {
		return fmt.Errorf("preparing message image: %w", err)
	}

	ciphered, err := vcrypto.GenerateCiphered(secret, prepared)
	if err != nil {
		return fmt.Errorf("generating ciphered share: %w", err)
	}

	if secretState != "reused" {
		slog.Debug("saving secret image", "path", secretPath)
		if err := imaging.Save(secretPath, imaging.ToImage(secret)); err != nil {
			slog.Error("saving secret image failed", "path", secretPath, "err", err)
		}
	}
	if flagPrepared != "" {
		slog.Debug("saving prepared message image", "path", flagPrepared)
		if err := imaging.Save(flagPrepared, imaging.ToImage(prepared)); err != nil {
			slog.Error("saving prepared message image failed", "path", flagPrepared, "err", err)
		}
	}
	if err := imaging.Save(cipheredPath, imaging.ToImage(ciphered)); err != nil {
		return fmt.Errorf("saving ciphered image: %w", err)
	}

	recordRun(cfg, history.Run{
		Message:     flagMessage,
		Secret:      secretPath,
		Ciphered:    cipheredPath,
		Width:       width,
		Height:      height,
		SecretState: secretState,
	})

	if flagDisplay {
		for _, g := range []*grid.Grid{prepared, secret, ciphered} {
			if ok, cols, rows := display.Fits(g); !ok {
				slog.Warn("grid exceeds terminal size, output will wrap",
					"grid", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
					"terminal", fmt.Sprintf("%dx%d", cols, rows))
			}
			display.Render(os.Stdout, g)
			fmt.Println()
		}
	}
	return nil
}

// loadConfig reads the config file, falling back to defaults when absent.
func loadConfig() *config.Config {
	cfg, err := config.Load(configPath())
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not read config, using defaults", "path", configPath(), "err", err)
		}
		return config.Defaults()
	}
	return cfg
}

func recordRun(cfg *config.Config, run history.Run) {
	if cfg.HistoryDB == "" {
		return
	}
	log, err := history.Open(expandHome(cfg.HistoryDB))
	if err != nil {
		slog.Warn("could not open history db", "err", err)
		return
	}
	defer log.Close()
	if err := log.Record(run); err != nil {
		slog.Warn("could not record encode run", "err", err)
	}
}

// parseSize parses a "WIDTH,HEIGHT" pair of positive integers.
func parseSize(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid format for resize option: %q (want WIDTH,HEIGHT)", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resize width: %q", parts[0])
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resize height: %q", parts[1])
	}
	if w <= 0 {
		return 0, 0, fmt.Errorf("resize width should be > 0")
	}
	if h <= 0 {
		return 0, 0, fmt.Errorf("resize height should be > 0")
	}
	return w, h, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
