package app

import (
	"log/slog"

	"github.com/thenoetrevino/taskboard/internal/store"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	dataStore store.DataStore
	logger    *slog.Logger
}

// WithDataStore bypasses daemon discovery and uses ds for the board
func WithDataStore(ds store.DataStore) Option {
	return func(cfg *appConfig) {
		cfg.dataStore = ds
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
