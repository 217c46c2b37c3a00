package core

import (
	"runtime"
	"strings"
	"sync"
	"time"
)

// Entry represents a single log record on its way to the host console
type Entry struct {
	Time    time.Time
	Level   Level
	Module  string // empty when the origin is unknown
	Message string
	Fields  []Field
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Fields = e.Fields[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Module = ""
	e.Time = time.Time{}
	entryPool.Put(e)
}

// CallerModule returns the import path of the package containing the
// function at pc, e.g. "github.com/acme/game/physics". It returns "" when
// pc cannot be resolved.
func CallerModule(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	return packagePath(frame.Function)
}

// packagePath strips the function, method and receiver parts from a fully
// qualified function name. Dots in the last path element arrive escaped
// as %2e.
func packagePath(fn string) string {
	if fn == "" {
		return ""
	}
	dir := ""
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		dir, fn = fn[:i+1], fn[i+1:]
	}
	if i := strings.IndexByte(fn, '.'); i >= 0 {
		fn = fn[:i]
	}
	return dir + strings.ReplaceAll(fn, "%2e", ".")
}
