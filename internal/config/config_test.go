package config_test

import (
	"os"
	"testing"

	"github.com/ageron/visual-crypto/internal/config"
)

func TestLoad(t *testing.T) {
	cfg, err := config.Load("../../testdata/config.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Secret != "shares/secret.png" {
		t.Errorf("Secret = %q, want %q", cfg.Secret, "shares/secret.png")
	}
	if cfg.Threshold != 60 {
		t.Errorf("Threshold = %v, want 60", cfg.Threshold)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	// Unset keys keep their defaults.
	if cfg.Ciphered != "ciphered.png" {
		t.Errorf("Ciphered = %q, want default %q", cfg.Ciphered, "ciphered.png")
	}
}

func TestLoad_Defaults(t *testing.T) {
	f, _ := os.CreateTemp("", "*.yaml")
	f.Close()
	defer os.Remove(f.Name())

	cfg, err := config.Load(f.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Secret != "secret.png" {
		t.Errorf("default Secret = %q, want %q", cfg.Secret, "secret.png")
	}
	if cfg.Threshold != 50 {
		t.Errorf("default Threshold = %v, want 50", cfg.Threshold)
	}
}
