// Package config loads bench settings from YAML. Command-line flags
// override the values read here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-pixcmp/internal/buffer"
	"github.com/cwbudde/algo-pixcmp/internal/harness"
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// Config is the complete set of bench settings.
type Config struct {
	// Seed initializes the buffer fill. Zero behaves as 1.
	Seed     int64 `yaml:"seed"`
	BitDepth int   `yaml:"bit_depth"`

	Iterations int `yaml:"iterations"`
	Positions  int `yaml:"positions"`
	Step       int `yaml:"step"`
	Stride     int `yaml:"stride"`

	// Primitive selects single-partition mode; -1 sweeps everything.
	Primitive int `yaml:"primitive"`

	// CPUID overrides capability detection; -1 detects.
	CPUID int `yaml:"cpuid"`

	Variants Variants `yaml:"variants"`
	LogLevel string   `yaml:"log_level"`

	// Report is an optional output path ending in .json, .yaml or .yml.
	Report string `yaml:"report"`
}

// Variants toggles the optional candidate families.
type Variants struct {
	Vector   bool `yaml:"vector"`
	Assembly bool `yaml:"assembly"`
}

// Default returns the settings of a plain invocation with no flags.
func Default() Config {
	return Config{
		Seed:       1,
		BitDepth:   pixel.Depth8,
		Iterations: harness.DefaultIterations,
		Positions:  harness.DefaultPositions,
		Step:       harness.DefaultStep,
		Stride:     harness.DefaultStride,
		Primitive:  -1,
		CPUID:      -1,
		Variants:   Variants{Vector: true, Assembly: true},
		LogLevel:   "warn",
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if err := pixel.ValidateDepth(c.BitDepth); err != nil {
		return err
	}
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if err := c.Policy().Fits(buffer.DataLength + buffer.Padding); err != nil {
		return err
	}
	if c.Primitive < -1 || c.Primitive >= primitives.NumPartitions {
		return fmt.Errorf("primitive must be -1 or 0..%d, got %d", primitives.NumPartitions-1, c.Primitive)
	}
	if c.CPUID < -1 {
		return fmt.Errorf("cpuid must be -1 or a capability id, got %d", c.CPUID)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Report != "" {
		if _, err := ReportFormat(c.Report); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveSeed maps a zero seed to 1, as a C library srand(0) does.
func (c Config) EffectiveSeed() int64 {
	if c.Seed == 0 {
		return 1
	}
	return c.Seed
}

// Policy returns the sweep and timing constants.
func (c Config) Policy() harness.Policy {
	return harness.Policy{
		Iterations: c.Iterations,
		Positions:  c.Positions,
		Step:       c.Step,
		Stride:     c.Stride,
	}
}

// Single returns the single-partition selection, or nil for a full sweep.
func (c Config) Single() *primitives.Partition {
	if c.Primitive < 0 {
		return nil
	}
	p := primitives.Partition(c.Primitive)
	return &p
}

// ParseLevel converts a log level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReportFormat derives the report encoding from the file extension.
func ReportFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("report %s: extension must be .json, .yaml or .yml", path)
	}
}
