package slogbridge

import (
	"context"
	"log/slog"
)

// Option configures a Logger, see WithHandler.
type Option func(*Logger)

// WithContext sets the context passed to the slog.Handler for every event.
// Defaults to context.Background().
func WithContext(ctx context.Context) Option {
	return func(l *Logger) {
		l.ctx = ctx
	}
}

// WithAttrs adds attributes included on every event, before any
// event-specific attributes.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(l *Logger) {
		l.attrs = append(l.attrs, attrs...)
	}
}
