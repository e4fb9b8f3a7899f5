// SPDX-License-Identifier: MIT

// Package config loads the alchemy CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "alchemy.yaml"

// Config is the content of alchemy.yaml. Zero values mean "use the default".
type Config struct {
	// TablePath points to a YAML periodic table replacing the embedded one.
	TablePath string `yaml:"table,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// Color disables colored output when set to false.
	Color *bool `yaml:"color,omitempty"`

	// Concurrency bounds batch classification; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency,omitempty" validate:"gte=0,lte=1024"`

	// Heating is the default reaction condition.
	Heating bool `yaml:"heating,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Resolve loads path when given; otherwise it loads DefaultFile if present
// and falls back to Default.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := Load(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Validate checks field values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)

	return validate.Struct(c)
}

// Level maps LogLevel to a slog level; unknown values mean warn.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// UseColor reports whether colored output is enabled, honouring NO_COLOR.
func (c *Config) UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	return c.Color == nil || *c.Color
}
