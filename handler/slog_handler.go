package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/godotlog/core"
)

// ModuleKey is the attribute key that carries a record's origin through
// slog. Bind it once with slog.Logger.With(ModuleKey, "app.physics") or
// pass it per call.
const ModuleKey = "module"

// LevelTrace is the slog level used for TRACE records
const LevelTrace = slog.Level(-8)

// SlogOptions configures a SlogHandler
type SlogOptions struct {
	// ResolveCaller derives the origin from the calling package's import
	// path when no module attribute is present.
	ResolveCaller bool
}

// SlogHandler is an adapter that implements slog.Handler on top of a
// Handler, usually a *Sink.
// Its Enabled gate admits up to the most verbose configured threshold;
// Handle then re-checks each record against the threshold for its origin.
type SlogHandler struct {
	handler       Handler
	filters       *core.FilterSet
	resolveCaller bool
	module        string
	attrs         []core.Field
	group         string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping h.
func NewSlogHandler(h Handler, filters *core.FilterSet, opts SlogOptions) *SlogHandler {
	return &SlogHandler{
		handler:       h,
		filters:       filters,
		resolveCaller: opts.ResolveCaller,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.filters.MaxLevel().Enables(SlogLevelToCore(level))
}

// Handle resolves the record's origin, applies the filter for that origin
// and passes the record to the handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := SlogLevelToCore(record.Level)

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = level
	entry.Message = record.Message
	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}

	module := s.module
	record.Attrs(func(a slog.Attr) bool {
		if m, ok := moduleAttr(s.group, a); ok {
			if m != "" {
				module = m
			}
			return true
		}
		entry.Fields = appendAttr(entry.Fields, s.group, a)
		return true
	})
	if module == "" && s.resolveCaller {
		module = core.CallerModule(record.PC)
	}

	if !s.filters.Enabled(module, level) {
		return nil
	}
	entry.Module = module
	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes. A
// top-level ModuleKey attribute binds the origin instead of becoming a field.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := s.clone()
	for _, a := range attrs {
		if m, ok := moduleAttr(s.group, a); ok {
			if m != "" {
				h.module = m
			}
			continue
		}
		h.attrs = appendAttr(h.attrs, s.group, a)
	}
	return h
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	h := s.clone()
	if s.group != "" {
		h.group = s.group + "." + name
	} else {
		h.group = name
	}
	return h
}

func (s *SlogHandler) clone() *SlogHandler {
	attrs := make([]core.Field, len(s.attrs), len(s.attrs)+4)
	copy(attrs, s.attrs)
	return &SlogHandler{
		handler:       s.handler,
		filters:       s.filters,
		resolveCaller: s.resolveCaller,
		module:        s.module,
		attrs:         attrs,
		group:         s.group,
	}
}

// moduleAttr reports whether a is a top-level string module attribute.
// An empty module is reported too so it is dropped rather than rendered.
func moduleAttr(group string, a slog.Attr) (string, bool) {
	if group != "" || a.Key != ModuleKey {
		return "", false
	}
	v := a.Value.Resolve()
	if v.Kind() != slog.KindString {
		return "", false
	}
	return v.String(), true
}

// SlogLevelToCore converts a slog.Level to a core.Level.
func SlogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// CoreLevelToSlog converts a core.Level to the slog.Level used to emit it.
func CoreLevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.ErrorLevel:
		return slog.LevelError
	case core.WarnLevel:
		return slog.LevelWarn
	case core.InfoLevel:
		return slog.LevelInfo
	case core.DebugLevel:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// appendAttr converts a slog.Attr to fields, prepending the group prefix.
// Group attributes are flattened into dotted keys; empty attributes are
// dropped as slog.Handler requires.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Key == "" && a.Value.Kind() != slog.KindGroup {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.Uint64Type, Int64: int64(a.Value.Uint64())})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	default:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
