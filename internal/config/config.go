// Package config loads the editor configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"moose/internal/buffer"
)

// Terminal backends.
const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
)

// Config is the user configuration.
type Config struct {
	TabStop       int             `yaml:"tab_stop"`       // Tab expansion width.
	QuitTimes     int             `yaml:"quit_times"`     // Extra Ctrl-Q presses needed with unsaved changes.
	StatusTimeout time.Duration   `yaml:"status_timeout"` // How long status messages stay visible.
	Backend       string          `yaml:"backend"`        // termbox or tcell.
	LogLevel      string          `yaml:"log_level"`      // zerolog level name.
	LogFile       string          `yaml:"log_file"`       // Empty disables logging.
	Profiles      []buffer.Syntax `yaml:"profiles"`       // Checked before the built-in profiles.
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TabStop:       buffer.DefaultTabStop,
		QuitTimes:     3,
		StatusTimeout: 5 * time.Second,
		Backend:       BackendTermbox,
		LogLevel:      "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/moose/config.yml (or the platform
// equivalent), or "" when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "moose", "config.yml")
}

// Load reads the configuration at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Registry returns the profile registry: user profiles first, then the
// built-in ones.
func (c *Config) Registry() *buffer.Registry {
	return buffer.DefaultRegistry(c.Profiles...)
}
