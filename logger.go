package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured JSON slog.Logger on stdout. Debug level also
// records the source location of each entry.
func NewLogger(level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: level <= slog.LevelDebug})
	return slog.New(h)
}
