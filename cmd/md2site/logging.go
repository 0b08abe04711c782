package main

import (
	"io"
	"log/slog"
)

// newLogger builds the CLI logger: errors only with quiet, debug records
// with verbose, warnings otherwise. Verbose wins when both are set.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
