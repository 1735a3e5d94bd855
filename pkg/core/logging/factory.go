// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/brackets/foundation/core/log"
	"github.com/msto63/brackets/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// Request ID attached to every entry (optional)
	RequestID string

	// Include caller information
	EnableCaller bool

	// Output writer (default: stderr, so results on stdout stay clean)
	Output io.Writer

	// Additional outputs (besides Output)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// FromConfig derives a LoggerConfig from the application configuration
func FromConfig(cfg *config.Config) LoggerConfig {
	return LoggerConfig{
		ServiceName:  cfg.General.Name,
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		EnableCaller: cfg.Log.Caller,
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	})

	if cfg.RequestID != "" {
		logger = logger.WithRequestID(cfg.RequestID)
	}
	return logger
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to mdwlog.Level, falling back to warn
func parseLevel(level string) mdwlog.Level {
	l, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelWarn
	}
	return l
}

// parseFormat converts a string format to mdwlog.Format, falling back to console
func parseFormat(format string) mdwlog.Format {
	if strings.TrimSpace(format) == "" {
		return mdwlog.FormatConsole
	}
	f, err := mdwlog.ParseFormat(format)
	if err != nil {
		return mdwlog.FormatConsole
	}
	return f
}
