// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// Init installs a level-filtered text handler over stderr as the default
// logger. verbose bumps the level to Info, debug to Debug; otherwise scans
// log only Warn and above so a running scan's stderr stays quiet.
func Init(verbose, debug bool) {
	var level slog.LevelVar
	level.Set(slog.LevelWarn)

	if verbose {
		level.Set(slog.LevelInfo)
	}
	if debug {
		level.Set(slog.LevelDebug)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &level,
	})))
}
