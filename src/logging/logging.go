// Package logging configures the process-wide logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds a text logger writing to stderr. Verbose lowers the level
// to debug so per-file tracing shows up.
func New(verbose bool) *slog.Logger {
	return NewWriter(os.Stderr, verbose)
}

// NewWriter is New with an explicit destination, for tests.
func NewWriter(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
