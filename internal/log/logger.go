package log

import (
	"io"
	"log/slog"
)

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// level returns Debug in verbose mode and Warn otherwise.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text slog.Logger writing to w.
// If verbose is true the level is Debug; otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a JSON slog.Logger writing to w.
// Useful for structured log aggregation in CI jobs.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// New creates a logger for the given format.
// Unknown formats fall back to text.
func New(w io.Writer, format string, verbose bool) *slog.Logger {
	if format == FormatJSON {
		return NewJSONLogger(w, verbose)
	}
	return NewLogger(w, verbose)
}
