package notes

import (
	"io"
	"log/slog"
)

type options struct {
	ids    IDGenerator
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		ids:    UUIDs{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) {
		if ids != nil {
			o.ids = ids
		}
	}
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
