package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/handler"
)

// registration is the state installed by a successful Init
type registration struct {
	filters *core.FilterSet
	sink    *handler.Sink
	slog    *slog.Logger
	zap     *zap.Logger
}

// active is set exactly once per process
var active atomic.Pointer[registration]

// Initialized reports whether Init has succeeded in this process
func Initialized() bool {
	return active.Load() != nil
}

// Default returns the registered logger, or slog.Default before Init
func Default() *slog.Logger {
	if reg := active.Load(); reg != nil {
		return reg.slog
	}
	return slog.Default()
}

// Module returns a logger whose records originate from module
func Module(module string) *slog.Logger {
	return Default().With(handler.ModuleKey, module)
}

// Zap returns a zap logger writing to the registered sink. Use Named to
// set the origin. Before Init it returns a no-op logger.
func Zap() *zap.Logger {
	if reg := active.Load(); reg != nil {
		return reg.zap
	}
	return zap.NewNop()
}

// Stats returns the dispatch statistics of the registered sink
func Stats() handler.Snapshot {
	if reg := active.Load(); reg != nil {
		return reg.sink.Stats()
	}
	return handler.NewStats().GetSnapshot()
}

// Flush flushes the registered sink. Writes are unbuffered, so this only
// exists for symmetry with other logging backends.
func Flush() {
	if reg := active.Load(); reg != nil {
		reg.sink.Flush()
	}
}

// Package-level convenience functions using the default logger

// logAt keeps the PC of the package-level function's caller so caller
// modules resolve to the application, not to this package.
func logAt(level core.Level, msg string, args ...any) {
	l := Default()
	ctx := context.Background()
	sl := handler.CoreLevelToSlog(level)
	if !l.Enabled(ctx, sl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, logAt, exported func]
	r := slog.NewRecord(time.Now(), sl, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

// Trace logs a trace message using the default logger
func Trace(msg string, args ...any) {
	logAt(core.TraceLevel, msg, args...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, args ...any) {
	logAt(core.DebugLevel, msg, args...)
}

// Info logs an info message using the default logger
func Info(msg string, args ...any) {
	logAt(core.InfoLevel, msg, args...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, args ...any) {
	logAt(core.WarnLevel, msg, args...)
}

// Error logs an error message using the default logger
func Error(msg string, args ...any) {
	logAt(core.ErrorLevel, msg, args...)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	logAt(core.TraceLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	logAt(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	logAt(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	logAt(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	logAt(core.ErrorLevel, fmt.Sprintf(format, args...))
}
