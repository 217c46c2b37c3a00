// Package logger is the public API of godotlog. Most users only need to
// import this package.
//
// A Builder collects the default threshold and per-module filters, then
// Init installs a single process-wide sink that writes to the host
// console. Init succeeds at most once per process; later calls return
// core.ErrAlreadyInitialized and leave the first registration in place.
//
//	err := logger.NewBuilder().
//	    WithDefaultLevel(logger.InfoLevel).
//	    AddFilter("app.physics", logger.DebugLevel).
//	    Init()
//
// After Init the sink is also the log/slog default, so slog.Info and the
// standard log package are routed through it. The origin module of a
// record is its "module" attribute:
//
//	logger.Module("app.physics").Debug("step", "dt", 0.016)
//
// Zap returns a zap.Logger over the same sink for code that already
// uses zap; its logger name is the origin module.
//
// Records at WARN and ERROR go to the console's warning channel, all
// others to its standard channel, as lines of the form
//
//	2024-01-02 03:04:05 DEBUG app.physics step dt=0.016
package logger
