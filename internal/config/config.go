package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/navmenu"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docnav.yaml"

// Config represents the application configuration
type Config struct {
	Menu   MenuConfig   `yaml:"menu"`
	Output OutputConfig `yaml:"output"`
	Lint   LintConfig   `yaml:"lint"`
	Watch  WatchConfig  `yaml:"watch"`
}

// MenuConfig selects the menu to operate on.
type MenuConfig struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source,omitempty"` // YAML menu source; empty selects the built-in table
	BaseURL string `yaml:"base_url"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path,omitempty"` // empty writes to stdout
}

// LintConfig controls the route check.
type LintConfig struct {
	ContentDir string `yaml:"content_dir"`
}

// WatchConfig controls rebuild-on-edit.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the configuration at path, applies defaults and environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	_ = loadEnvFile()

	cfg := &Config{}
	// #nosec G304 -- path is provided by the operator.
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, derrors.FileSystemError("read", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, derrors.ConfigInvalid(path, err)
		}
	}

	applyEnvOverrides(cfg)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, derrors.ConfigInvalid(path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Menu.Name == "" {
		c.Menu.Name = "integrations"
	}
	if c.Menu.BaseURL == "" {
		c.Menu.BaseURL = "/docs/" + c.Menu.Name
	}
	if c.Output.Format == "" {
		c.Output.Format = "meta"
	}
	if c.Lint.ContentDir == "" {
		c.Lint.ContentDir = "pages/docs/" + c.Menu.Name
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = 500 * time.Millisecond
	}
}

// Validate checks fields that have no sensible default.
func (c *Config) Validate() error {
	if _, err := navmenu.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Menu.Source != "" {
		if st, err := os.Stat(c.Menu.Source); err == nil && st.IsDir() {
			return fmt.Errorf("menu.source %s is a directory", c.Menu.Source)
		}
	}
	return nil
}
