package config

import (
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-pixcmp/internal/harness"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 8, cfg.BitDepth)
	assert.Equal(t, harness.DefaultPolicy(), cfg.Policy())
	assert.Nil(t, cfg.Single())
	assert.Equal(t, -1, cfg.CPUID)
	assert.True(t, cfg.Variants.Vector)
	assert.True(t, cfg.Variants.Assembly)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.Report)
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 10, cfg.BitDepth)
	assert.Equal(t, harness.Policy{Iterations: 500, Positions: 11, Step: 16, Stride: 32}, cfg.Policy())
	require.NotNil(t, cfg.Single())
	assert.Equal(t, primitives.P8x8, *cfg.Single())
	assert.Equal(t, 5, cfg.CPUID)
	assert.Equal(t, Variants{Vector: true, Assembly: false}, cfg.Variants)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "out/run.json", cfg.Report)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Iterations)
	assert.Equal(t, harness.DefaultPositions, cfg.Positions)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.False(t, cfg.Variants.Vector)
	assert.True(t, cfg.Variants.Assembly)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "empty.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		msg  string
	}{
		{"missing", "nope.yaml", "failed to read config file"},
		{"unknown field", "typo.yaml", "failed to parse YAML"},
		{"invalid value", "bad_depth.yaml", "unsupported bit depth 12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"iterations", func(c *Config) { c.Iterations = 0 }},
		{"positions", func(c *Config) { c.Positions = -1 }},
		{"stride", func(c *Config) { c.Stride = 0 }},
		{"positions past buffer", func(c *Config) { c.Positions = 500 }},
		{"stride past buffer", func(c *Config) { c.Stride = 128 }},
		{"step past buffer", func(c *Config) { c.Step = math.MaxInt32 }},
		{"primitive high", func(c *Config) { c.Primitive = primitives.NumPartitions }},
		{"primitive low", func(c *Config) { c.Primitive = -2 }},
		{"cpuid", func(c *Config) { c.CPUID = -5 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"report extension", func(c *Config) { c.Report = "run.txt" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEffectiveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 0
	assert.Equal(t, int64(1), cfg.EffectiveSeed())
	cfg.Seed = 7
	assert.Equal(t, int64(7), cfg.EffectiveSeed())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)
}

func TestReportFormat(t *testing.T) {
	for path, want := range map[string]string{
		"run.json":     FormatJSON,
		"a/b/RUN.JSON": FormatJSON,
		"run.yaml":     FormatYAML,
		"run.yml":      FormatYAML,
	} {
		got, err := ReportFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := ReportFormat("run")
	assert.Error(t, err)
}
