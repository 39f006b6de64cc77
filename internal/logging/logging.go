// Package logging builds the slog logger quill writes to while the TUI owns
// the terminal.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ParseLevel maps a config log level to slog. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, "error")
}

// Open returns a logger appending to path, plus the func that closes it.
// An empty path gives a discarding logger.
func Open(path, level string) (*slog.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "quill")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}
