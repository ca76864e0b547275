// Package log configures structured logging for ikpagrid using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level maps the verbosity flags to a slog level. Quiet wins over verbose.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the level chosen by the flags.
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	}))
}

// Setup installs a stderr logger as the slog default. Stdout stays free
// for rendered tables and the MCP transport.
func Setup(verbose, quiet bool) {
	slog.SetDefault(New(os.Stderr, verbose, quiet))
}
