// SPDX-License-Identifier: MIT

// Package config loads the tally command configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is specified.
const DefaultPath = "tally.yaml"

// Supported locales.
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// Supported log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the tally command configuration.
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Locale string `yaml:"locale"`
	Batch  struct {
		Workers int `yaml:"workers"`
	} `yaml:"batch"`
}

// Load reads config from a YAML file, then applies environment variable overrides & defaults.
//
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TALLY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TALLY_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TALLY_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("TALLY_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: TALLY_WORKERS: %v", ErrInvalidConfig, err)
		}
		cfg.Batch.Workers = workers
	}

	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
	if c.Locale == "" {
		c.Locale = LocaleRU
	}
}

// Validate checks that every field holds a supported value.
//
// A zero Batch.Workers is valid & leaves the worker count to the batch parser.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalidConfig, FormatText, FormatJSON, c.Log.Format)
	}

	switch c.Locale {
	case LocaleRU, LocaleEN:
	default:
		return fmt.Errorf("%w: locale must be %q or %q, got %q", ErrInvalidConfig, LocaleRU, LocaleEN, c.Locale)
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must not be negative", ErrInvalidConfig)
	}

	return nil
}
