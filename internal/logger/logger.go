package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewJSONLogger returns a slog logger writing JSON lines to w. Debug mode
// lowers the level from Info to Debug.
func NewJSONLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// InitJSONLogger configures and sets the default slog logger to use JSON format on stdout.
func InitJSONLogger(debug bool) {
	slog.SetDefault(NewJSONLogger(os.Stdout, debug))
}
