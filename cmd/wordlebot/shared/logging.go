package shared

import (
	"os"

	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog for the solver's network internals: pretty
// console output by default, structured JSON when jsonFormat is set.
func SetupLogger(debug, jsonFormat bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if jsonFormat {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return logger.Level(level).With().Timestamp().Logger()
}
