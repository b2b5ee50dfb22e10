package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string  `yaml:"loglevel"`
	Secret    string  `yaml:"secret"`    // default secret share path
	Ciphered  string  `yaml:"ciphered"`  // default ciphered share path
	Threshold float32 `yaml:"threshold"` // black/white split, percent of full brightness
	HistoryDB string  `yaml:"history_db"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		LogLevel:  "warn",
		Secret:    "secret.png",
		Ciphered:  "ciphered.png",
		Threshold: 50,
		HistoryDB: "",
	}
}

func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
