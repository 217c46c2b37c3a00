package logger

import (
	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/handler"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	OffLevel   = core.OffLevel
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// LevelTrace is the slog level that maps to TraceLevel
const LevelTrace = handler.LevelTrace

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
