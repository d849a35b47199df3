package circuit

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with circuit-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger over handler.
// If handler is nil, uses a text handler to stderr at INFO.
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

// NewTextLogger creates a Logger writing human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// WithQuery tags records with the query name.
func (l *Logger) WithQuery(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", name),
	}
}
