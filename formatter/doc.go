// Package formatter renders log entries into host console lines.
//
// TextFormatter produces "YYYY-MM-DD HH:MM:SS LEVEL [module ]message",
// omitting the module segment when the record has no origin. Fields
// attached by structured facades follow the message as " key=value".
// No trailing newline is written; the host console owns line breaks.
//
// TextFormatter also implements BufferFormatter so the sink can format
// into a pooled bytes.Buffer. It relies on time.AppendFormat to avoid
// a separate timestamp allocation and pre-computes the " LEVEL "
// strings.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
