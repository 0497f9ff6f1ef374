// Package logger configures the zerolog logger used by the command.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Level is warn by default, info
// with verbose and debug with debug.
func New(w io.Writer, debug, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).With().Timestamp().Logger().Level(Level(debug, verbose))
}

func Level(debug, verbose bool) zerolog.Level {
	switch {
	case debug:
		return zerolog.DebugLevel
	case verbose:
		return zerolog.InfoLevel
	}
	return zerolog.WarnLevel
}
