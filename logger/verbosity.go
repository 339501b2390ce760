package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
//
// Example usage:
//
//	rootCmd.PersistentFlags().CountP("verbose", "v", "...")
//	logger.Initialize(jsonFlag, verbosity)
const (
	VerbosityUser  = 0 // No flags: results and errors only
	VerbosityInfo  = 1 // -v: + per-dataset progress
	VerbosityDebug = 2 // -vv: + validation detail, seeds, timing
)

// VerbosityToLevel maps verbosity flag counts (-v, -vv) to zap log levels.
//
// Mapping:
//
//	0 (none) -> WarnLevel  (errors and warnings only)
//	1 (-v)   -> InfoLevel  (+ informational messages)
//	2+ (-vv) -> DebugLevel (+ debug messages)
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch verbosity {
	case VerbosityUser:
		return zapcore.WarnLevel
	case VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for a verbosity level.
func LevelName(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "User"
	case VerbosityInfo:
		return "Info (-v)"
	case VerbosityDebug:
		return "Debug (-vv)"
	default:
		if verbosity > VerbosityDebug {
			return "Debug (-vv+)"
		}
		return "Unknown"
	}
}
