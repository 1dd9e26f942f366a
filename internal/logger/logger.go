// Package logger configures the zerolog loggers used across the service.
// Components receive a child logger tagged with their name so log lines can
// be filtered per subsystem.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout tagged with the given
// component name.
func New(component string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Timestamp().
		Str("component", component).
		Logger()
}

// NewForEnvironment returns a logger whose level matches the deployment
// environment: debug everywhere except production, where info is the floor.
func NewForEnvironment(component, environment string) zerolog.Logger {
	level := zerolog.DebugLevel
	if environment == "production" {
		level = zerolog.InfoLevel
	}
	return New(component).Level(level)
}
