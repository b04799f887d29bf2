package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidThreshold is returned when the threshold lies outside [-1, 1],
	// the range of a correlation coefficient.
	ErrInvalidThreshold = errors.New("invalid threshold: must be between -1 and 1")

	// ErrUnknownBackend is returned for a backend other than native or opencv.
	ErrUnknownBackend = errors.New("unknown backend: must be native or opencv")

	// ErrUnknownInterpolation is returned for an interpolation other than
	// bilinear or nearest.
	ErrUnknownInterpolation = errors.New("unknown interpolation: must be bilinear or nearest")

	// ErrUnsupportedConfigFormat is returned for config files that are
	// neither TOML nor YAML.
	ErrUnsupportedConfigFormat = errors.New("unsupported config format: use .toml, .yaml or .yml")
)
