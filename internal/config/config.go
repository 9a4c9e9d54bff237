// Package config loads the optional kaze settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	envLogFile  = "KAZE_LOG_FILE"
	envLogLevel = "KAZE_LOG_LEVEL"
)

type Config struct {
	// LogFile receives log output while the editor owns the screen.
	// Empty means logs are discarded.
	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/kaze/config.yaml, falling back to
// ~/.config/kaze/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "kaze", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "kaze", "config.yaml")
	}
	return filepath.Join(home, ".config", "kaze", "config.yaml")
}

// Load reads the config at path. A missing file is not an error.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("loading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envLogFile); ok {
		c.LogFile = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
}
