// Package logging builds the zap logger. The terminal belongs to the UI, so
// log output goes to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lassopick/internal/config"
)

// New returns a JSON file logger tagged with the session id. An empty file
// name disables logging.
func New(settings config.LogSettings, session string) (*zap.Logger, error) {
	if settings.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{settings.File}
	cfg.ErrorOutputPaths = []string{settings.File}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if session != "" {
		cfg.InitialFields = map[string]interface{}{"session": session}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}
