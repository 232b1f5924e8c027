package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Lookup returns the logger stored in ctx, if any.
func Lookup(ctx context.Context) (*zerolog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(loggerKey).(*zerolog.Logger)
	return logger, ok && logger != nil
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := Lookup(ctx); ok {
		return logger
	}
	return Default()
}

func withField(ctx context.Context, apply func(zerolog.Context) zerolog.Context) context.Context {
	logger := apply(FromContext(ctx).With()).Logger()
	return WithLogger(ctx, &logger)
}

// WithKind tags the context logger with an entity kind.
func WithKind(ctx context.Context, kind string) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("kind", kind) })
}

// WithPage tags the context logger with a page index.
func WithPage(ctx context.Context, page int) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context { return c.Int("page", page) })
}

// WithOperation tags the context logger with an operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("operation", operation) })
}
