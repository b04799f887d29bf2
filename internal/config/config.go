// Package config holds the comparison and logging settings of the
// application together with their defaults, file loading and validation.
package config

import (
	"os"
	"strings"

	"github.com/mcuadros/go-defaults"
)

// Backend names accepted by the Backend field.
const (
	BackendNative = "native"
	BackendOpenCV = "opencv"
)

// Interpolation names accepted by the Interpolation field.
const (
	InterpolationBilinear = "bilinear"
	InterpolationNearest  = "nearest"
)

// Config is the complete runtime configuration.
type Config struct {
	// Threshold is the correlation a pair must strictly exceed to match.
	Threshold float64 `toml:"threshold" yaml:"threshold" default:"0.7"`

	// Interpolation selects the resize kernel used during normalization.
	Interpolation string `toml:"interpolation" yaml:"interpolation" default:"bilinear"`

	// Backend selects the load+normalize implementation.
	Backend string `toml:"backend" yaml:"backend" default:"native"`

	// ParallelLoad loads both images concurrently.
	ParallelLoad bool `toml:"parallel_load" yaml:"parallel_load" default:"false"`

	LogLevel string `toml:"log_level" yaml:"log_level" default:"info"`

	// LogFile, when set, also writes rotated JSON logs to this path.
	LogFile string `toml:"log_file" yaml:"log_file"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	return cfg
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Threshold < -1 || c.Threshold > 1 {
		return ErrInvalidThreshold
	}

	switch c.Backend {
	case BackendNative, BackendOpenCV:
	default:
		return ErrUnknownBackend
	}

	switch c.Interpolation {
	case InterpolationBilinear, InterpolationNearest:
	default:
		return ErrUnknownInterpolation
	}

	return nil
}

// ApplyEnv overrides the log level from LOG_LEVEL, or forces debug when
// DEBUG=1.
func (c *Config) ApplyEnv() {
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		c.LogLevel = level
		return
	}
	if os.Getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}
}
