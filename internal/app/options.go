package app

import (
	"log/slog"

	"github.com/thenoetrevino/dotoo/internal/events"
	"github.com/thenoetrevino/dotoo/internal/types"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	clock       types.Clock
}

// WithEventPublisher sets the event publisher for the application.
// Without one the App creates and owns an in-process bus.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock pins the time source, for tests
func WithClock(c types.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = c
	}
}
