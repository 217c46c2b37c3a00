// Package handler delivers log entries to the host console.
//
// The host console is modeled as the Console interface: two
// fire-and-forget write operations, one for warnings and errors and one
// for everything else. ConsoleFuncs adapts a pair of host print
// callbacks; package consolehandler provides a Console over io.Writers.
//
// Sink is the single delivery point. Receive stamps the entry with the
// current local time, renders "YYYY-MM-DD HH:MM:SS LEVEL [module ]message"
// and writes it to the warning channel for WARN and ERROR, or to the
// standard channel otherwise. Receive never fails and never blocks on
// anything but the host write; a panicking host callback is recovered
// and counted in Stats.
//
// Facade adapters sit in front of the Sink:
//
//   - SlogHandler implements log/slog.Handler. The origin comes from a
//     "module" attribute (bound with Logger.With or passed per call) or,
//     with ResolveCaller, from the calling package's import path.
//   - ZapCore implements zapcore.Core. The origin is the zap logger name.
//
// Both gate at the most verbose threshold of their core.FilterSet and
// re-check each record against the threshold for its origin.
package handler
