package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is the process logger. Components receive it through their
// constructors; it is kept here for bootstrap code.
var Log *slog.Logger

func Init(production bool) *slog.Logger {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
	return Log
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
