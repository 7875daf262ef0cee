package sievego

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with sievego-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLimit adds a limit field to the logger.
func (l *Logger) WithLimit(limit uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("limit", limit),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogSieve logs a bounded sieve request.
func (l *Logger) LogSieve(ctx context.Context, limit uint64, primes int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve failed",
			"limit", limit,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sieve completed",
			"limit", limit,
			"primes", primes,
			"elapsed", elapsed,
		)
	}
}

// LogSegment logs completion of a single segment.
func (l *Logger) LogSegment(ctx context.Context, lo, hi uint64, primes int, elapsed time.Duration) {
	l.DebugContext(ctx, "segment sieved",
		"lo", lo,
		"hi", hi,
		"primes", primes,
		"elapsed", elapsed,
	)
}

// LogFreeRunExtend logs a frontier extension of an unbounded stream.
func (l *Logger) LogFreeRunExtend(ctx context.Context, frontier uint64) {
	l.DebugContext(ctx, "free run frontier extended",
		"frontier", frontier,
	)
}
