package quantity

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Logger wraps slog.Logger with quantity-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	// unnamed throttles reports of derived units without a known quantity;
	// products in a simulation loop would otherwise log on every step.
	unnamed *rate.Sometimes
}

func newLogger(l *slog.Logger) *Logger {
	return &Logger{
		Logger:  l,
		unnamed: &rate.Sometimes{First: 1, Interval: time.Minute},
	}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return newLogger(slog.New(slog.DiscardHandler))
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger:  l.Logger.With("size", size),
		unnamed: l.unnamed,
	}
}

// LogCopy logs a copy-on-write materialization.
func (l *Logger) LogCopy(cells int, layout string, duration time.Duration) {
	l.Debug("copy-on-write storage copied",
		"cells", cells,
		"layout", layout,
		"duration", duration,
	)
}

// LogOperation logs a whole-vector combinator. Callers attach the operand
// size with WithSize.
func (l *Logger) LogOperation(op string, err error) {
	if err != nil {
		l.Debug("vector operation failed",
			"op", op,
			"error", err,
		)
	} else {
		l.Debug("vector operation completed",
			"op", op,
		)
	}
}

// LogUnnamedUnit reports a derived SI unit that matches no known quantity.
// Reports are rate limited; computation proceeds with the unnamed unit.
func (l *Logger) LogUnnamedUnit(symbol string) {
	l.unnamed.Do(func() {
		l.Info("derived unit has no known quantity",
			"symbol", symbol,
		)
	})
}
