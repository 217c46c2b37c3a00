// Package core defines the shared types used across godotlog.
//
// It provides the Level type, ordered from OffLevel (admits nothing)
// through ErrorLevel, WarnLevel, InfoLevel and DebugLevel to TraceLevel
// (admits everything), the Entry type that represents a single record,
// and the Field type for attributes attached by structured facades.
//
// Filter binds a module path prefix to a threshold. FilterSet resolves
// the threshold for a record's origin: the longest matching module wins,
// and among equally long matches the filter added last wins. Matching
// respects path boundaries ('.', '/' or "::"), so "app.net" covers
// "app.net.http" but not "app.network".
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the sink has consumed it.
//
// Errors returned by the package are *Error values carrying a
// CATEGORY.SPECIFIC code; errors.Is matches on the code.
package core
