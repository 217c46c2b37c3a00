package handler

import (
	"github.com/philipp01105/godotlog/core"
)

// Handler receives entries from the facade adapters. Sink is the
// production implementation.
type Handler interface {
	// Handle processes a log entry that already passed level filtering.
	// The entry is returned to its pool after Handle returns.
	Handle(entry *core.Entry) error
}

// Console is the host environment's output console. Implementations are
// fire-and-forget: they must not block for long and must not return
// failures to the caller. Both methods may be called concurrently.
type Console interface {
	// WriteWarning writes a line to the warning/error channel
	WriteWarning(text string)
	// WriteInfo writes a line to the standard channel
	WriteInfo(text string)
}

// ConsoleFuncs adapts two host print callbacks to Console. A nil
// callback discards the text.
type ConsoleFuncs struct {
	Warning func(text string)
	Info    func(text string)
}

// WriteWarning implements Console
func (c ConsoleFuncs) WriteWarning(text string) {
	if c.Warning != nil {
		c.Warning(text)
	}
}

// WriteInfo implements Console
func (c ConsoleFuncs) WriteInfo(text string) {
	if c.Info != nil {
		c.Info(text)
	}
}

// DiscardConsole drops everything written to it
var DiscardConsole Console = ConsoleFuncs{}
