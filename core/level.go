package core

import (
	"strconv"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Level represents the severity of a record, or the threshold a record
// must meet. Higher values are more verbose.
type Level int8

const (
	// OffLevel disables logging. It is only meaningful as a threshold.
	OffLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarnLevel for warning messages (default threshold)
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very verbose tracing, admits everything as a threshold
	TraceLevel
)

// levelNames is indexed by Level
var levelNames = [...]string{
	OffLevel:   "OFF",
	ErrorLevel: "ERROR",
	WarnLevel:  "WARN",
	InfoLevel:  "INFO",
	DebugLevel: "DEBUG",
	TraceLevel: "TRACE",
}

// String returns the upper-case name of the level
func (l Level) String() string {
	if l < OffLevel || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the declared levels
func (l Level) Valid() bool {
	return l >= OffLevel && l <= TraceLevel
}

// Enables reports whether a record at level rec passes when l is used as
// the threshold. Nothing passes an OffLevel threshold and an OffLevel
// record never passes.
func (l Level) Enables(rec Level) bool {
	return rec != OffLevel && rec <= l
}

// IsWarning reports whether records at this level belong on the host's
// warning channel.
func (l Level) IsWarning() bool {
	return l == ErrorLevel || l == WarnLevel
}

// ParseLevel converts a case-insensitive level name to a Level.
// A Caser is not safe to share between goroutines, so one is built per call.
func ParseLevel(s string) (Level, error) {
	switch cases.Fold().String(s) {
	case "off":
		return OffLevel, nil
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return OffLevel, NewError(ErrCodeUnknownLevel, "unrecognized level name "+strconv.Quote(s), nil)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, NewError(ErrCodeUnknownLevel, "cannot marshal level "+l.String(), nil)
	}
	return []byte(cases.Fold().String(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// SetValue decodes a level name from an environment variable. It
// satisfies cleanenv.Setter.
func (l *Level) SetValue(s string) error {
	return l.UnmarshalText([]byte(s))
}

// UnmarshalYAML implements yaml.Unmarshaler so levels can be written by
// name in configuration files.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return NewError(ErrCodeUnknownLevel, "level must be a string", err)
	}
	return l.UnmarshalText([]byte(name))
}
