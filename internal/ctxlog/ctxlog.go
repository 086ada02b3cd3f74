// Package ctxlog carries the run's slog.Logger through context.Context so the
// builder, planner and plugin modules log through the logger configured by the
// app rather than the process-wide default.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. A missing logger is a
// wiring bug, so it panics instead of silently falling back.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}

// WithWriter is a shortcut for tests and tools: it embeds a text logger that
// writes every level to w.
func WithWriter(ctx context.Context, w io.Writer) context.Context {
	return WithLogger(ctx, slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
