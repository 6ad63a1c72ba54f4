// Package logger builds the structured logger every Tomo subsystem is
// handed at construction time.
package logger

import (
	"go.uber.org/zap"
)

// New builds a production zap logger tagged with the given service name
// and returns its SugaredLogger, the form used throughout the engine.
func New(service string) *zap.SugaredLogger {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return base.With(zap.String("service", service)).Sugar()
}

// NewNop returns a logger that discards everything, for tests and callers
// that don't want Tomo's logging.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
