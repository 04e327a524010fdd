// Package config loads the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GridColumnOptions are the selectable images-per-row values.
var GridColumnOptions = []int{1, 2, 3, 4, 5, 6, 8, 10}

// Config holds the application settings. Everything has a usable default;
// a missing config file is not an error.
type Config struct {
	// DefaultDir is the directory opened at startup.
	DefaultDir string `yaml:"default_dir"`
	// BookmarkFile is where the saved directory list lives. It is passed
	// into the bookmark store at construction so tests can redirect it.
	BookmarkFile string `yaml:"bookmark_file"`
	// GridColumns is the initial images-per-row in the gallery grid.
	GridColumns int `yaml:"grid_columns"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		DefaultDir:  ".",
		GridColumns: 4,
		LogLevel:    "info",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		cfg.BookmarkFile = filepath.Join(dir, "resview", "bookmarks.json")
	} else {
		cfg.BookmarkFile = "bookmarks.json"
	}
	return cfg
}

// Load reads the configuration from the default location
// (~/.config/resview/config.yaml).
func Load() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, "resview", "config.yaml"))
}

// LoadFile reads the configuration from path. A missing file yields the
// defaults; set fields override them.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if loaded.DefaultDir != "" {
		cfg.DefaultDir = loaded.DefaultDir
	}
	if loaded.BookmarkFile != "" {
		cfg.BookmarkFile = loaded.BookmarkFile
	}
	if loaded.GridColumns != 0 {
		cfg.GridColumns = loaded.GridColumns
	}
	if loaded.LogLevel != "" {
		cfg.LogLevel = loaded.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	valid := false
	for _, n := range GridColumnOptions {
		if c.GridColumns == n {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("grid_columns must be one of %v, got %d", GridColumnOptions, c.GridColumns)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level: %s", c.LogLevel)
	}
	if c.BookmarkFile == "" {
		return fmt.Errorf("bookmark_file must not be empty")
	}
	return nil
}
