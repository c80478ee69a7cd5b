package edgedist

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with edgedist-specific events and field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithThreshold adds the threshold field to every record.
func (l *Logger) WithThreshold(threshold float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("threshold", threshold),
	}
}

// LogRejected logs a validation failure.
func (l *Logger) LogRejected(err error) {
	l.Error("input rejected", "error", err)
}

// LogWarning logs a non-fatal validation diagnostic.
func (l *Logger) LogWarning(w Warning) {
	l.Warn(w.Warning())
}

// LogValidated logs the shape of an accepted input.
func (l *Logger) LogValidated(rows, groups int, engine string) {
	l.Debug("input validated",
		"rows", rows,
		"groups", groups,
		"engine", engine,
	)
}

// LogGroup logs the outcome of one group.
func (l *Logger) LogGroup(key GroupKey, size, pairs int) {
	l.Debug("group matched",
		"group", key.String(),
		"size", size,
		"pairs", pairs,
	)
}

// LogCompleted logs the final edge counts.
func (l *Logger) LogCompleted(edges, isolated int) {
	l.Info("edge list built",
		"edges", edges,
		"isolated", isolated,
	)
}
