// Package logging builds the diagnostic slog logger. User-facing progress
// output does not go through it.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel applies when the configured level is empty or unknown.
const DefaultLevel = slog.LevelWarn

// ParseLevel maps debug, info, warn and error (case-insensitive) to a level.
func ParseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return DefaultLevel, false
	}
	return level, true
}

// New returns a text logger writing to w at the given level name.
func New(w io.Writer, level string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
