// Package shared holds helpers used by every blackjack subcommand.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the structured logger all components hang off.
func SetupLogger(level string, debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})

	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
