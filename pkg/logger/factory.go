package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo, extractors...)
}

// NewWithWriter creates a JSON logger writing to w at the given minimum level.
func NewWithWriter(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	log := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(NewLogHandlerDecorator(log, extractors...))
}

// ParseLevel maps a LOG_LEVEL value to a slog level.
// Unknown or empty values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
