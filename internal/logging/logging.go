// Package logging builds the zerolog loggers used across the workbench.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level. Unknown or
// empty level names fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Stderr returns the standard console logger for CLI commands.
func Stderr(level string) zerolog.Logger {
	return New(level, os.Stderr)
}
