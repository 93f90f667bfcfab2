// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fieldprof/field"
	"github.com/katalvlaran/fieldprof/internal/config"
	"github.com/katalvlaran/fieldprof/profile"
	"github.com/katalvlaran/fieldprof/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fieldprof.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Nil(t, cfg.Profile.TwoSided)
	assert.Equal(t, "bilinear", cfg.Sampler.Method)
	assert.Equal(t, config.FormatTable, cfg.Output.Format)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []profile.Kind{profile.X, profile.Y, profile.AzAvg}, kinds)
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, `
profile:
  two_sided: false
  bins: 12
  kinds: [azavg, azstd]
  producer: mtf
sampler:
  method: bicubic
  bounds: fail
logging:
  level: debug
  format: json
output:
  format: csv
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Profile.TwoSided)
	assert.False(t, *cfg.Profile.TwoSided)
	assert.Equal(t, 12, cfg.Profile.Bins)
	assert.Equal(t, field.MTF, cfg.Producer())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, config.FormatCSV, cfg.Output.Format)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []profile.Kind{profile.AzAvg, profile.AzStd}, kinds)
	assert.Len(t, cfg.ProfileOptions(), 2)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "sampler:\n  method: nearest\nprofile:\n  bins: 4\n")
	t.Setenv("FIELDPROF_SAMPLER_METHOD", "bicubic")
	t.Setenv("FIELDPROF_PROFILE_TWO_SIDED", "true")
	t.Setenv("FIELDPROF_PROFILE_KINDS", "x,azmax")
	t.Setenv("FIELDPROF_OUTPUT_FORMAT", "json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bicubic", cfg.Sampler.Method)
	assert.Equal(t, 4, cfg.Profile.Bins, "unset env keeps the file value")
	require.NotNil(t, cfg.Profile.TwoSided)
	assert.True(t, *cfg.Profile.TwoSided)
	assert.Equal(t, []string{"x", "azmax"}, cfg.Profile.Kinds)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)

	opts, err := cfg.SamplerOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative bins", "profile:\n  bins: -3\n"},
		{"unknown kind", "profile:\n  kinds: [diagonal]\n"},
		{"unknown producer", "profile:\n  producer: laser\n"},
		{"unknown method", "sampler:\n  method: lanczos\n"},
		{"unknown bounds", "sampler:\n  bounds: wrap\n"},
		{"unknown level", "logging:\n  level: loud\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
		{"unknown output", "output:\n  format: png\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(writeFile(t, "profile: [not, a, map]\n"))
	require.Error(t, err)

	t.Setenv("FIELDPROF_PROFILE_BINS", "many")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestValidate_WrapsCause(t *testing.T) {
	cfg := config.Default()
	cfg.Sampler.Bounds = "wrap"
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, sampler.ErrUnknownBounds)

	cfg = config.Default()
	cfg.Profile.Kinds = nil
	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, profile.Kinds(), kinds)
}
