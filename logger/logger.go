package logger

import (
	"log/slog"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/handler"
	"github.com/philipp01105/godotlog/handler/consolehandler"
)

// Builder accumulates the logger configuration. It is consumed by Init
// and cannot be initialized twice.
type Builder struct {
	defaultLevel core.Level
	filters      []core.Filter
	console      handler.Console
	clock        func() time.Time
	stats        *handler.Stats
	callerModule bool
	err          error
	consumed     atomic.Bool
}

// NewBuilder creates a builder with WarnLevel as the default threshold
// and no filters.
func NewBuilder() *Builder {
	return &Builder{
		defaultLevel: core.WarnLevel, // Default level
	}
}

// WithDefaultLevel sets the threshold for records no filter matches
func (b *Builder) WithDefaultLevel(level core.Level) *Builder {
	b.defaultLevel = level
	return b
}

// AddFilter appends a module-level override. Duplicate modules are kept;
// see core.FilterSet for how overlaps resolve. An empty module is
// reported by Init.
func (b *Builder) AddFilter(module string, level core.Level) *Builder {
	f, err := core.NewFilter(module, level)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.filters = append(b.filters, f)
	return b
}

// WithConsole sets the host console (default: stderr/stdout)
func (b *Builder) WithConsole(c handler.Console) *Builder {
	b.console = c
	return b
}

// WithClock sets the time source used to stamp records
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// WithStats shares dispatch counters with the caller, e.g. for metrics
func (b *Builder) WithStats(s *handler.Stats) *Builder {
	b.stats = s
	return b
}

// WithCallerModule makes slog records without a module attribute take the
// calling package's import path as their origin.
func (b *Builder) WithCallerModule(enabled bool) *Builder {
	b.callerModule = enabled
	return b
}

// DefaultLevel returns the configured default threshold
func (b *Builder) DefaultLevel() core.Level {
	return b.defaultLevel
}

// Filters returns a copy of the configured filters in insertion order
func (b *Builder) Filters() []core.Filter {
	return append([]core.Filter(nil), b.filters...)
}

// Init registers the configured sink as the process-wide log destination
// and installs it as the slog default, which also captures the standard
// log package. It fails with core.ErrConsumed when the builder was already
// used, and with core.ErrAlreadyInitialized when another Init in this
// process won; the active registration is left untouched in both cases.
func (b *Builder) Init() error {
	if !b.consumed.CompareAndSwap(false, true) {
		return core.ErrConsumed
	}
	if b.err != nil {
		return b.err
	}

	reg := b.build()
	if !active.CompareAndSwap(nil, reg) {
		return core.ErrAlreadyInitialized
	}
	slog.SetDefault(reg.slog)
	return nil
}

func (b *Builder) build() *registration {
	console := b.console
	stats := b.stats
	if stats == nil {
		stats = handler.NewStats()
	}
	if console == nil {
		console = consolehandler.New(consolehandler.Config{
			OnError: func(error) { stats.IncrementFailed() },
		})
	}

	filters := core.NewFilterSet(b.defaultLevel, b.filters)
	sink := handler.NewSink(handler.SinkConfig{
		Console: console,
		Clock:   b.clock,
		Stats:   stats,
	})

	return &registration{
		filters: filters,
		sink:    sink,
		slog: slog.New(handler.NewSlogHandler(sink, filters, handler.SlogOptions{
			ResolveCaller: b.callerModule,
		})),
		zap: zap.New(handler.NewZapCore(sink, filters)),
	}
}
