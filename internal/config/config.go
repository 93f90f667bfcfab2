// SPDX-License-Identifier: MIT

// Package config loads fieldprof settings: built-in defaults, then an optional
// YAML file, then FIELDPROF_* environment variables. Command-line flags are
// applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/fieldprof/field"
	"github.com/katalvlaran/fieldprof/profile"
	"github.com/katalvlaran/fieldprof/sampler"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. FIELDPROF_PROFILE_BINS.
const EnvPrefix = "FIELDPROF_"

// ErrInvalidConfig indicates a setting with an unrecognized or out-of-range value.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Config is the complete fieldprof configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile" envPrefix:"PROFILE_"`
	Sampler SamplerConfig `yaml:"sampler" envPrefix:"SAMPLER_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
	Output  OutputConfig  `yaml:"output" envPrefix:"OUTPUT_"`
}

// ProfileConfig configures profile extraction.
type ProfileConfig struct {
	TwoSided *bool    `yaml:"two_sided" env:"TWO_SIDED"` // nil: producer default
	Bins     int      `yaml:"bins" env:"BINS"`           // 0: automatic
	Kinds    []string `yaml:"kinds" env:"KINDS" envSeparator:","`
	Producer string   `yaml:"producer" env:"PRODUCER"` // applied to inputs without one
}

// SamplerConfig configures point sampling.
type SamplerConfig struct {
	Method string `yaml:"method" env:"METHOD"` // nearest, bilinear, bicubic
	Bounds string `yaml:"bounds" env:"BOUNDS"` // saturate, fail
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // json, console
}

// OutputConfig configures rendering.
type OutputConfig struct {
	Format string `yaml:"format" env:"FORMAT"` // table, csv, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Profile: ProfileConfig{
			Bins:     profile.DefaultBins,
			Kinds:    []string{"x", "y", "azavg"},
			Producer: field.Generic.String(),
		},
		Sampler: SamplerConfig{
			Method: sampler.DefaultMethod.String(),
			Bounds: sampler.DefaultBounds.String(),
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: FormatTable},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when path
// is empty or the file does not exist) and then with environment overrides.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overlays FIELDPROF_* environment variables. Unset variables leave
// the current values untouched.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate rejects unknown enum strings and negative bin counts.
func (c *Config) Validate() error {
	if c.Profile.Bins < 0 {
		return fmt.Errorf("profile.bins=%d: %w", c.Profile.Bins, ErrInvalidConfig)
	}
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("profile.kinds: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := field.ParseProducer(c.Profile.Producer); err != nil {
		return fmt.Errorf("profile.producer: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.SamplerOptions(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format=%q: %w", c.Logging.Format, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatTable, FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("output.format=%q: %w", c.Output.Format, ErrInvalidConfig)
	}

	return nil
}

// Kinds resolves Profile.Kinds; an empty list means every kind.
func (c *Config) Kinds() ([]profile.Kind, error) {
	if len(c.Profile.Kinds) == 0 {
		return profile.Kinds(), nil
	}

	return profile.ParseKinds(c.Profile.Kinds...)
}

// Producer resolves Profile.Producer, falling back to field.Generic.
func (c *Config) Producer() field.Producer {
	p, err := field.ParseProducer(c.Profile.Producer)
	if err != nil {
		return field.Generic
	}

	return p
}

// ProfileOptions converts the profile section into extractor options.
func (c *Config) ProfileOptions() []profile.Option {
	opts := []profile.Option{profile.WithBins(max(c.Profile.Bins, 0))}
	if c.Profile.TwoSided != nil {
		opts = append(opts, profile.WithTwoSided(*c.Profile.TwoSided))
	}

	return opts
}

// SamplerOptions converts the sampler section into sampler options.
func (c *Config) SamplerOptions() ([]sampler.Option, error) {
	m, err := sampler.ParseMethod(c.Sampler.Method)
	if err != nil {
		return nil, fmt.Errorf("sampler.method: %w: %w", ErrInvalidConfig, err)
	}
	b, err := sampler.ParseBounds(c.Sampler.Bounds)
	if err != nil {
		return nil, fmt.Errorf("sampler.bounds: %w: %w", ErrInvalidConfig, err)
	}

	return []sampler.Option{sampler.WithMethod(m), sampler.WithBounds(b)}, nil
}
