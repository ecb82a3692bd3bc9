package physunit

import (
	"log/slog"
	"os"

	"github.com/hupe1980/physunit/dimension"
)

// Logger wraps slog.Logger with physunit-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogSystem logs the declaration of a base-dimension set.
func (l *Logger) LogSystem(set dimension.Set) {
	names := make([]string, 0, set.Len())
	for _, b := range set.Bases() {
		names = append(names, b.Name)
	}
	l.Debug("base dimensions declared",
		"count", set.Len(),
		"bases", names,
	)
}

// LogDefinition logs a unit definition.
func (l *Logger) LogDefinition(op string, u Unit, err error) {
	if err != nil {
		l.Error("unit definition failed",
			"op", op,
			"error", err,
		)
	} else {
		l.Debug("unit defined",
			"op", op,
			"unit", u.String(),
		)
	}
}

// LogDimensionMismatch logs an operation rejected for mismatched dimensions.
func (l *Logger) LogDimensionMismatch(op string, left, right Unit) {
	l.Warn("dimension mismatch",
		"op", op,
		"left", left.dimensionString(),
		"right", right.dimensionString(),
	)
}

// LogConversion logs a failed payload conversion.
func (l *Logger) LogConversion(from, to Unit, err error) {
	if err != nil {
		l.Error("conversion failed",
			"from", from.String(),
			"to", to.String(),
			"error", err,
		)
	} else {
		l.Debug("conversion completed",
			"from", from.String(),
			"to", to.String(),
		)
	}
}
