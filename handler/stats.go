package handler

import (
	"sync/atomic"

	"github.com/philipp01105/godotlog/core"
)

// Stats tracks sink dispatch statistics
type Stats struct {
	// Separate atomic counters per level
	DispatchedError uint64
	DispatchedWarn  uint64
	DispatchedInfo  uint64
	DispatchedDebug uint64
	DispatchedTrace uint64
	// FailedTotal counts host writes that panicked or reported an error
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) counter(level core.Level) *uint64 {
	switch level {
	case core.ErrorLevel:
		return &s.DispatchedError
	case core.WarnLevel:
		return &s.DispatchedWarn
	case core.InfoLevel:
		return &s.DispatchedInfo
	case core.DebugLevel:
		return &s.DispatchedDebug
	case core.TraceLevel:
		return &s.DispatchedTrace
	default:
		return nil
	}
}

// IncrementDispatched atomically increments the dispatched counter for a level
func (s *Stats) IncrementDispatched(level core.Level) {
	if c := s.counter(level); c != nil {
		atomic.AddUint64(c, 1)
	}
}

// IncrementFailed atomically increments the failed write counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetDispatched returns the dispatched count for a level
func (s *Stats) GetDispatched(level core.Level) uint64 {
	if c := s.counter(level); c != nil {
		return atomic.LoadUint64(c)
	}
	return 0
}

// GetFailed returns the failed write count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.DispatchedError, 0)
	atomic.StoreUint64(&s.DispatchedWarn, 0)
	atomic.StoreUint64(&s.DispatchedInfo, 0)
	atomic.StoreUint64(&s.DispatchedDebug, 0)
	atomic.StoreUint64(&s.DispatchedTrace, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Dispatched map[core.Level]uint64
	// WarningChannel and InfoChannel split Dispatched by console channel
	WarningChannel uint64
	InfoChannel    uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Dispatched:  make(map[core.Level]uint64, 5),
		FailedTotal: s.GetFailed(),
	}
	for _, l := range []core.Level{core.ErrorLevel, core.WarnLevel, core.InfoLevel, core.DebugLevel, core.TraceLevel} {
		n := s.GetDispatched(l)
		snap.Dispatched[l] = n
		if l.IsWarning() {
			snap.WarningChannel += n
		} else {
			snap.InfoChannel += n
		}
	}
	return snap
}

// StatsProvider is implemented by handlers that expose dispatch statistics
type StatsProvider interface {
	Stats() Snapshot
}
