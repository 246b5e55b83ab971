// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for eventbook configuration and
	// data.
	DefaultConfigDir = ".eventbook"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSnapshotFile is the default snapshot database file name.
	DefaultSnapshotFile = "eventbook.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Snapshot SnapshotConfig `yaml:"snapshot,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// SnapshotConfig holds configuration for snapshot persistence.
type SnapshotConfig struct {
	// Path is the file path to the SQLite snapshot database. Relative paths
	// are resolved against the config directory.
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Snapshot: SnapshotConfig{Path: DefaultSnapshotFile},
		Log:      LogConfig{Level: "info"},
	}
}

// Load loads configuration from the .eventbook directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("EVENTBOOK_DATA"); path != "" {
		c.Snapshot.Path = path
	}
}

// SnapshotPath resolves the snapshot file path against the config directory.
func (c *Config) SnapshotPath(basePath string) string {
	if filepath.IsAbs(c.Snapshot.Path) {
		return c.Snapshot.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, c.Snapshot.Path)
}

// ConfigDir returns the path to the .eventbook config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if an eventbook config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
