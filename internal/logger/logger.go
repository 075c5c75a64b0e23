// Package logger builds the slog logger for the command-line tools. Level
// and format come from LOG_LEVEL (debug, info, warn, error) and
// LOG_FORMAT (text, json); output always goes to the given writer, normally
// stderr, so that stdout carries only command results.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values mean info.
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

// New builds a logger writing to w with the given level and format.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// Setup builds the logger configured by LOG_LEVEL and LOG_FORMAT, writing to w.
func Setup(w io.Writer) *slog.Logger {
	return New(w, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}
