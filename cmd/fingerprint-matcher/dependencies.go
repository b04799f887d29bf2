package main

import (
	"fmt"
	"io"
	"os"

	"fingerprint-matcher/internal/config"
	"fingerprint-matcher/internal/logger"
	"fingerprint-matcher/internal/opencv"
	"fingerprint-matcher/internal/pipeline"

	"github.com/spf13/cobra"
)

// dependencies is the wired application shared by the GUI and the CLI.
type dependencies struct {
	cfg        *config.Config
	log        *logger.ZerologAdapter
	comparator *pipeline.Comparator

	// logCloser releases log output; close failures are written to stderr.
	logCloser io.Closer
	stderr    io.Writer
}

func newDependencies(cmd *cobra.Command) (*dependencies, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if level, _ := flags.GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if backend, _ := flags.GetString("backend"); backend != "" {
		cfg.Backend = backend
	}
	if flags.Changed("threshold") {
		cfg.Threshold, _ = flags.GetFloat64("threshold")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	nearest := cfg.Interpolation == config.InterpolationNearest
	var source pipeline.Source
	switch cfg.Backend {
	case config.BackendOpenCV:
		source = opencv.NewSource(nearest, log)
	default:
		source = pipeline.NewNativeSource(pipeline.NewNormalizer(nearest), log)
	}

	comparator := pipeline.NewComparator(source, log,
		pipeline.WithThreshold(cfg.Threshold),
		pipeline.WithParallelLoad(cfg.ParallelLoad),
	)

	log.Debug("Setup", "configuration resolved", map[string]interface{}{
		"backend":       cfg.Backend,
		"threshold":     cfg.Threshold,
		"interpolation": cfg.Interpolation,
		"parallel_load": cfg.ParallelLoad,
	})

	return &dependencies{
		cfg:        cfg,
		log:        log,
		comparator: comparator,
		logCloser:  log,
		stderr:     os.Stderr,
	}, nil
}

func newLogger(cfg *config.Config) (*logger.ZerologAdapter, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogFile == "" {
		return logger.NewConsoleLogger(level), nil
	}
	return logger.NewFileLogger(cfg.LogFile, level)
}

// Close releases the log file, if any. Failures go to stderr.
func (d *dependencies) Close() {
	if err := d.logCloser.Close(); err != nil {
		fmt.Fprintf(d.stderr, "failed to close log file: %v\n", err)
	}
}
