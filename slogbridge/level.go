package slogbridge

import (
	"log/slog"

	"github.com/joeycumines/logiface"
)

// slogLevel maps logiface.Level to the nearest slog.Level, see the package
// documentation for the full table. Custom (registered) logiface levels map
// to slog.LevelError.
func slogLevel(level logiface.Level) slog.Level {
	switch level {
	case logiface.LevelTrace, logiface.LevelDebug:
		return slog.LevelDebug
	case logiface.LevelInformational:
		return slog.LevelInfo
	case logiface.LevelNotice, logiface.LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// logifaceLevel maps slog.Level to the nearest logiface.Level, including
// non-standard slog levels (which slice into the nearest bracket: anything
// below INFO is debug, anything above ERROR is still error).
func logifaceLevel(level slog.Level) logiface.Level {
	switch {
	case level < slog.LevelInfo:
		return logiface.LevelDebug
	case level < slog.LevelWarn:
		return logiface.LevelInformational
	case level < slog.LevelError:
		return logiface.LevelNotice
	default:
		return logiface.LevelError
	}
}
