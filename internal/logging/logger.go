// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level and encoding of a logger.
type Options struct {
	// Level is a zap level name such as "debug" or "warn".
	Level string
	// Format is "console" or "json".
	Format string
	// Verbose forces debug level regardless of Level.
	Verbose bool
	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// ParseLevel converts a level name into a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// ValidFormat reports whether format names a supported encoding.
func ValidFormat(format string) bool {
	switch format {
	case "", "console", "json":
		return true
	}
	return false
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		lvl = zapcore.DebugLevel
	}
	if !ValidFormat(opts.Format) {
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	if opts.Format == "json" {
		config.Encoding = "json"
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
