// Package logging builds the diagnostic logger. Interactive output never goes
// through it; without a log file the logger discards everything.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New(level, file string) (*zap.Logger, error) {
	if strings.TrimSpace(file) == "" {
		return zap.NewNop(), nil
	}
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}
	cfg.Sampling = nil
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
