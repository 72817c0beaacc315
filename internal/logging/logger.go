// Package logging builds the diagnostic logger. User-facing progress lines
// go through package report; this logger carries debug detail such as the
// exact command lines spawned, and always writes to stderr.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zowe-tools/zedc/internal/branding"
)

// New returns a console logger writing to w at the given level and installs
// it as the global zerolog logger. Unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
	logger := zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("app", branding.CLIName()).
		Logger()
	log.Logger = logger
	return logger
}

// Init configures the global logger on stderr.
func Init(level string) zerolog.Logger {
	return New(os.Stderr, level)
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
