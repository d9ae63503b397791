// Package config resolves where cmdstats keeps its persisted state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yoanbernabeu/cmdstats/store"
)

// EnvDataDir overrides the data directory when set. It wins over both
// the default and the config file, which keeps tests hermetic.
const EnvDataDir = "CMDSTATS_DATA_DIR"

// ConfigFileName is the optional YAML settings file inside the default
// data directory.
const ConfigFileName = "config.yml"

// DefaultDirName is the data directory created under the user's home.
const DefaultDirName = ".command_stats"

// Config holds runtime configuration for cmdstats.
type Config struct {
	DataDir string `yaml:"data_dir"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, DefaultDirName),
	}
}

// Load resolves the effective configuration. The environment override
// wins outright and skips the config file entirely, so a broken file on
// disk cannot fail overridden runs. Otherwise the optional config file
// in the default data directory refines the defaults; a missing file is
// fine, a malformed one is an error.
func Load() (Config, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return Config{DataDir: dir}, nil
	}

	cfg := Default()

	path := filepath.Join(cfg.DataDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no config file, keep defaults
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if cfg.DataDir == "" {
			cfg.DataDir = Default().DataDir
		}
	}

	return cfg, nil
}

// EnsureDataDir creates the data directory if it does not exist.
func (c Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("config: create data dir %s: %w", c.DataDir, err)
	}
	return nil
}

// StorePath returns the path of the command event log file.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, store.StoreFileName)
}
