package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/godotlog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Both channels share the console's mutex when they wrap
// the same writer, so lines from the two channels never interleave.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the console to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Config holds configuration for a writer-backed console
type Config struct {
	// Warning receives WARN and ERROR lines (default: os.Stderr)
	Warning io.Writer
	// Info receives INFO, DEBUG and TRACE lines (default: os.Stdout)
	Info io.Writer
	// ConcurrentWriter indicates both writers support concurrent Write
	// calls. Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
	// OnError is called with every failed write. Failures are otherwise
	// swallowed.
	OnError func(err error)
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *Config) {
	if cfg.Warning == nil {
		cfg.Warning = os.Stderr
	}
	if cfg.Info == nil {
		cfg.Info = os.Stdout
	}
}

// Console writes each line plus a newline to one of two writers. It
// implements handler.Console and is safe for concurrent use.
type Console struct {
	warning        io.Writer
	info           io.Writer
	concurrentSafe bool
	onError        func(err error)
	mu             sync.Mutex
}

var _ handler.Console = (*Console)(nil)

// New creates a writer-backed console
func New(cfg Config) *Console {
	applyConsoleDefaults(&cfg)
	c := &Console{
		onError: cfg.OnError,
		concurrentSafe: cfg.ConcurrentWriter ||
			(isConcurrentSafeWriter(cfg.Warning) && isConcurrentSafeWriter(cfg.Info)),
	}
	if c.concurrentSafe {
		c.warning, c.info = cfg.Warning, cfg.Info
	} else {
		c.warning = &lockedWriter{mu: &c.mu, w: cfg.Warning}
		c.info = &lockedWriter{mu: &c.mu, w: cfg.Info}
	}
	return c
}

// Stdio returns a console writing warnings to stderr and everything else
// to stdout.
func Stdio() *Console {
	return New(Config{})
}

// WriteWarning implements handler.Console
func (c *Console) WriteWarning(text string) {
	c.write(c.warning, text)
}

// WriteInfo implements handler.Console
func (c *Console) WriteInfo(text string) {
	c.write(c.info, text)
}

func (c *Console) write(w io.Writer, text string) {
	// One Write per line keeps lines whole on concurrent-safe writers.
	line := make([]byte, 0, len(text)+1)
	line = append(line, text...)
	line = append(line, '\n')
	if _, err := w.Write(line); err != nil && c.onError != nil {
		c.onError(err)
	}
}
