// Package constants defines shared default values for the command line
// tools.
package constants

import "log/slog"

const (
	// CmdName is the name of the point statistics tool.
	CmdName = "vecstat"

	// Version is the tool version, overridden at build time.
	Version = "Dev"
)

// DefaultLogLevel is the logging level used when no verbosity flags are
// given.
const DefaultLogLevel = slog.LevelWarn
