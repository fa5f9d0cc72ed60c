// Package config loads the weeknote configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the weeknote configuration
type Config struct {
	NotesDir   string `yaml:"notes_dir"`
	Editor     string `yaml:"editor"`
	DateFormat string `yaml:"date_format,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}
	return &Config{
		NotesDir:   "$HOME/.notes",
		Editor:     editor,
		DateFormat: "2006/01/02",
		LogLevel:   "warn",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "weeknote", "config.yaml")
	}
	return filepath.Join(home, ".config", "weeknote", "config.yaml")
}

// Load reads configuration from the config file, falling back to
// defaults when the file does not exist. Values missing from the file
// keep their defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that required fields are present
func (c *Config) Validate() error {
	if c.NotesDir == "" {
		return fmt.Errorf("notes_dir cannot be empty")
	}
	if c.Editor == "" {
		return fmt.Errorf("editor cannot be empty")
	}
	return nil
}

// ExpandedNotesDir returns NotesDir with environment variables expanded
func (c *Config) ExpandedNotesDir() string {
	return os.ExpandEnv(c.NotesDir)
}
