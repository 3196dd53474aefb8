// Package cli provides helpers shared by the command line tools.
package cli

import (
	"log/slog"

	"github.com/eadf/vector-traits/internal/constants"
)

// SetVerbosity sets the logging level for the default logger based on the
// verbose flag count.
//
// This function has the same behaviors as slog.SetLogLoggerLevel.
func SetVerbosity(level int) {
	slog.SetLogLoggerLevel(getLevel(level))
}

func getLevel(level int) slog.Level {
	switch level {
	case 0:
		return constants.DefaultLogLevel
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
