// Package config provides configuration management for peruse.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings for a viewer session.
type Config struct {
	// LogFile is the path debug logging is appended to. Empty disables
	// logging: a raw-mode session owns the tty, so log lines can never go
	// to standard output.
	LogFile string `toml:"log_file"`

	// ShowWelcome controls whether the welcome banner is drawn over an
	// empty document.
	ShowWelcome bool `toml:"show_welcome"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		ShowWelcome: true,
	}
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/peruse/config.toml (or the platform equivalent). The
// second return value is false when no user config directory exists.
func DefaultPath() (string, bool) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "peruse", "config.toml"), true
}

// Load reads configuration from the given path, or from DefaultPath when
// path is empty. A missing file is not an error; the defaults are
// returned. A file that exists but cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, ok := DefaultPath()
		if !ok {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
