package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvMenuSource   = "DOCNAV_MENU_SOURCE"
	EnvBaseURL      = "DOCNAV_BASE_URL"
	EnvOutputFormat = "DOCNAV_OUTPUT_FORMAT"
	EnvOutputPath   = "DOCNAV_OUTPUT_PATH"
	EnvContentDir   = "DOCNAV_CONTENT_DIR"
	EnvDebounce     = "DOCNAV_WATCH_DEBOUNCE"
)

// loadEnvFile loads .env then .env.local when present. Existing process
// environment variables are not overwritten.
func loadEnvFile() error {
	var loaded bool
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
		loaded = true
	}
	if !loaded {
		return os.ErrNotExist
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvMenuSource); v != "" {
		cfg.Menu.Source = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Menu.BaseURL = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv(EnvOutputPath); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv(EnvContentDir); v != "" {
		cfg.Lint.ContentDir = v
	}
	if v := os.Getenv(EnvDebounce); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Watch.Debounce = d
		}
	}
}
