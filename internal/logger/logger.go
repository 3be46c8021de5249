// Package logger builds the zap loggers used across the generator.
package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level returns the log level for the verbose setting.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}

	return zapcore.InfoLevel
}

// New builds a human-readable console logger. It writes to outputs, zap
// sink paths or URLs, or to stderr when none are given.
func New(verbose bool, outputs ...string) (*zap.SugaredLogger, error) {
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(Level(verbose))
	config.OutputPaths = outputs
	config.DisableStacktrace = true

	l, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}

	return l.Sugar(), nil
}

// OrNop returns l, or a logger that discards everything when l is nil.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}

	return l
}

// Named returns a child logger for a component.
func Named(l *zap.SugaredLogger, component string) *zap.SugaredLogger {
	return OrNop(l).Named(component).With(FieldComponent, component)
}
