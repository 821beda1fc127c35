package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// ToContext stores a logger in the context
func ToContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the logger stored in ctx, or slog.Default. Never nil.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// With enriches the context logger and stores the result back:
//
//	log, ctx := logger.With(ctx, "step", "scrape")
func With(ctx context.Context, args ...any) (*slog.Logger, context.Context) {
	log := FromContext(ctx).With(args...)
	return log, ToContext(ctx, log)
}
