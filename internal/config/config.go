// Package config resolves runtime settings from defaults, an optional YAML
// file and TIMELEDGER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	DBPath      string `yaml:"db_path"`
	LogUseCases bool   `yaml:"log_use_cases"`
	// EventLimit caps how many recent clock events feed a report. 0 means all.
	EventLimit int    `yaml:"event_limit"`
	HTTPAddr   string `yaml:"http_addr"`
	Currency   string `yaml:"currency"`
}

// Default returns the built-in settings rooted at home.
func Default(home string) Config {
	return Config{
		DBPath:      filepath.Join(home, ".timeledger", "timeledger.db"),
		LogUseCases: false,
		EventLimit:  50,
		HTTPAddr:    "127.0.0.1:8080",
		Currency:    "€",
	}
}

// Load builds the effective configuration. An explicit TIMELEDGER_CONFIG path
// must exist; the default ~/.timeledger/config.yaml is optional.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	path, explicit := os.LookupEnv("TIMELEDGER_CONFIG")
	if !explicit || path == "" {
		path = filepath.Join(home, ".timeledger", "config.yaml")
		explicit = false
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// mergeFile overlays the keys present in the YAML file at path.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TIMELEDGER_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TIMELEDGER_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TIMELEDGER_LOG_USE_CASES: %w", err)
		}
		c.LogUseCases = b
	}
	if v := os.Getenv("TIMELEDGER_EVENT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMELEDGER_EVENT_LIMIT: %w", err)
		}
		c.EventLimit = n
	}
	if v := os.Getenv("TIMELEDGER_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("TIMELEDGER_CURRENCY"); v != "" {
		c.Currency = v
	}
	return nil
}

// Validate rejects settings the rest of the program cannot work with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.EventLimit < 0 {
		return fmt.Errorf("event_limit must be >= 0, got %d", c.EventLimit)
	}
	if c.HTTPAddr == "" {
		return errors.New("http_addr must not be empty")
	}
	return nil
}
