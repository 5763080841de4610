package logutil

import (
	"context"
	"log/slog"
)

type logContextKey struct{}

func WithLogContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, logContextKey{}, log)
}

// Lookup returns the logger stored by WithLogContext, if any.
func Lookup(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	log, ok := ctx.Value(logContextKey{}).(*slog.Logger)
	return log, ok
}

// FromContext is Lookup with a fallback: commands run outside the root command's setup hook, e.g.
// in tests, get a logger that discards everything.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := Lookup(ctx); ok {
		return log
	}
	return slog.New(slog.DiscardHandler)
}
