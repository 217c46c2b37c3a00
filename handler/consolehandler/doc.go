// Package consolehandler provides a handler.Console backed by two
// io.Writers, for hosts whose output console is a pair of streams
// (default: os.Stderr for warnings and errors, os.Stdout for the rest).
//
// Each line is written with a single Write call followed by a newline.
// Writes are serialized with one mutex shared by both channels unless
// the writers are known to be safe for concurrent use (io.Discard and
// *os.File are detected automatically; set ConcurrentWriter for others).
// Write errors never reach the logging caller; they are passed to
// Config.OnError when set.
package consolehandler
