package cmd

import (
	"os"

	"github.com/etnz/fxdash/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging sends logs to stderr, human readable. Only warnings and errors
// are shown unless -v is set or FXD_VERBOSE is true.
func SetupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose || config.Verbose() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
