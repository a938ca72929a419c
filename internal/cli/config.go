// SPDX-License-Identifier: MIT
// Package: evroute/internal/cli
//
// config.go — Config, defaults, YAML file loading and validation.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/evroute/loader"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// ErrConfig indicates an invalid configuration value or file.
var ErrConfig = errors.New("cli: invalid configuration")

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the resolved program configuration.
// Nil Source and DisplayAll mean "ask at the prompt".
type Config struct {
	Graph      string    `yaml:"graph"`
	Source     *int      `yaml:"source"`
	DisplayAll *bool     `yaml:"display_all"`
	Format     string    `yaml:"format"`
	Color      string    `yaml:"color"`
	MaxNodes   int       `yaml:"max_nodes"`
	Log        LogConfig `yaml:"log"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Format:   FormatText,
		Color:    ColorAuto,
		MaxNodes: loader.DefaultMaxNodes,
		Log: LogConfig{
			Level:  LogLevelWarn,
			Format: LogFormatConsole,
		},
	}
}

// LoadConfigFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values; unknown keys are rejected.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
	}
	// A negative source asks at the prompt, as with -source -1.
	if cfg.Source != nil && *cfg.Source < 0 {
		cfg.Source = nil
	}

	return nil
}

// Validate checks enumerated values and limits.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q is not %s or %s", ErrConfig, c.Format, FormatText, FormatJSON)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q is not %s, %s or %s", ErrConfig, c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log format %q is not %s or %s", ErrConfig, c.Log.Format, LogFormatConsole, LogFormatJSON)
	}
	switch c.Log.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: log level %q is not %s, %s, %s or %s",
			ErrConfig, c.Log.Level, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: max_nodes cannot be negative (%d)", ErrConfig, c.MaxNodes)
	}
	if c.Graph == "" {
		return fmt.Errorf("%w: no graph file given", ErrConfig)
	}

	return nil
}
