// Package logger builds the emulator logger.
package logger

import (
	"github.com/retroenv/retrogolib/log"
)

// New returns a logger with the level derived from the verbosity flags.
func New(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
