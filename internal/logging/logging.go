// Package logging configures the command-line logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel names the environment variable that selects the log level.
const EnvLevel = "LOG_LEVEL"

// ParseLevel maps a LOG_LEVEL value to a zerolog level.  Empty or unknown
// values select zerolog.WarnLevel.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// FromEnv returns a logger writing to stderr at the level named by
// LOG_LEVEL.
func FromEnv() zerolog.Logger {
	return New(os.Stderr, ParseLevel(os.Getenv(EnvLevel)))
}
