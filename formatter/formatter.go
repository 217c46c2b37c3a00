package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/godotlog/core"
)

// ConsoleTimestamp is the timestamp layout of a console line
const ConsoleTimestamp = "2006-01-02 15:04:05"

// Formatter defines the interface for console line formatters
type Formatter interface {
	// Format renders an entry as a single console line without a
	// trailing newline
	Format(entry *core.Entry) string
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for ConsoleTimestamp)
	TimestampFormat string
	// OmitFields drops structured fields instead of appending them as key=value
	OmitFields bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the shared pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
