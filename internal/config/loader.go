package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is tried when CONFIG_PATH is unset. Unlike an explicit
// path, a missing default file is not an error.
const DefaultPath = "./config.yaml"

// Load resolves the config file from CONFIG_PATH, falling back to
// DefaultPath and then to environment variables alone.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadFile("")
	}
	return cfg, err
}

// LoadFile reads the YAML file at path and overlays environment variables
// on top (ENV > YAML > env-default tags). An empty path reads the
// environment only. The result is validated before it is returned.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
