package handler

import (
	"time"

	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/formatter"
)

// SinkConfig holds configuration for a Sink
type SinkConfig struct {
	// Console receives formatted lines (default: DiscardConsole)
	Console Console
	// Formatter renders entries (default: TextFormatter)
	Formatter formatter.Formatter
	// Clock stamps entries on receipt (default: time.Now)
	Clock func() time.Time
	// Stats collects dispatch counters (default: a private Stats)
	Stats *Stats
}

// Sink formats entries and dispatches them to the host console.
// Warnings and errors go to the warning channel, everything else to the
// standard channel. A Sink holds no mutable state besides atomic
// counters and is safe for concurrent use.
type Sink struct {
	console         Console
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	clock           func() time.Time
	stats           *Stats
}

// NewSink creates a new Sink
func NewSink(cfg SinkConfig) *Sink {
	if cfg.Console == nil {
		cfg.Console = DiscardConsole
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}

	s := &Sink{
		console:   cfg.Console,
		formatter: cfg.Formatter,
		clock:     cfg.Clock,
		stats:     cfg.Stats,
	}
	// Cache BufferFormatter for the pooled-buffer path
	s.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	return s
}

// Receive stamps, formats and dispatches an entry. It never fails: a host
// callback that panics is recovered and counted in Stats. Entries at
// OffLevel or an unknown level are dropped.
func (s *Sink) Receive(entry *core.Entry) {
	if entry.Level == core.OffLevel || !entry.Level.Valid() {
		return
	}
	entry.Time = s.clock()
	s.dispatch(entry.Level, s.render(entry))
}

func (s *Sink) render(entry *core.Entry) string {
	if s.bufferFormatter == nil {
		return s.formatter.Format(entry)
	}
	buf := formatter.GetBuffer()
	s.bufferFormatter.FormatEntry(entry, buf)
	line := buf.String()
	formatter.PutBuffer(buf)
	return line
}

func (s *Sink) dispatch(level core.Level, line string) {
	defer func() {
		if r := recover(); r != nil {
			s.stats.IncrementFailed()
		}
	}()

	if level.IsWarning() {
		s.console.WriteWarning(line)
	} else {
		s.console.WriteInfo(line)
	}
	s.stats.IncrementDispatched(level)
}

// Handle implements Handler. It always returns nil.
func (s *Sink) Handle(entry *core.Entry) error {
	s.Receive(entry)
	return nil
}

// Flush is a no-op; every Receive writes immediately.
func (s *Sink) Flush() {}

// Stats returns a snapshot of the current statistics
func (s *Sink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}
