package handler

import (
	"sort"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/godotlog/core"
)

// ZapCore implements zapcore.Core on top of a Sink so code written
// against zap ends up on the same host console. The record's origin is
// the zap logger name, set with zap.Logger.Named.
type ZapCore struct {
	handler Handler
	filters *core.FilterSet
	fields  []zapcore.Field
}

// NewZapCore creates a zapcore.Core writing to h, usually a *Sink.
func NewZapCore(h Handler, filters *core.FilterSet) *ZapCore {
	return &ZapCore{handler: h, filters: filters}
}

// Enabled implements zapcore.LevelEnabler
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.filters.MaxLevel().Enables(ZapLevelToCore(level))
}

// With returns a core carrying additional fields
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &ZapCore{handler: c.handler, filters: c.filters, fields: merged}
}

// Check adds this core when the entry passes the filter for its logger name
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.filters.Enabled(ent.LoggerName, ZapLevelToCore(ent.Level)) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry and its fields and hands them to the handler
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = ZapLevelToCore(ent.Level)
	entry.Module = ent.LoggerName
	entry.Message = ent.Message
	var ns string
	entry.Fields, ns = appendZapFields(entry.Fields, "", c.fields)
	entry.Fields, _ = appendZapFields(entry.Fields, ns, fields)

	return c.handler.Handle(entry)
}

// Sync is a no-op; the sink does not buffer.
func (c *ZapCore) Sync() error {
	return nil
}

// ZapLevelToCore converts a zapcore.Level to a core.Level.
func ZapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendZapFields encodes each field on its own so the output keeps call
// order. Nested objects are flattened into dotted keys; a Namespace field
// prefixes every field after it. It returns the namespace still open at
// the end so fields bound with With carry it into the call's fields.
func appendZapFields(out []core.Field, ns string, fields []zapcore.Field) ([]core.Field, string) {
	for _, f := range fields {
		if f.Type == zapcore.NamespaceType {
			ns = joinKey(ns, f.Key)
			continue
		}
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		out = appendZapMap(out, ns, enc.Fields)
	}
	return out, ns
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func appendZapMap(out []core.Field, prefix string, m map[string]interface{}) []core.Field {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		out = appendZapValue(out, joinKey(prefix, k), m[k])
	}
	return out
}

func appendZapValue(out []core.Field, key string, v interface{}) []core.Field {
	switch val := v.(type) {
	case map[string]interface{}:
		return appendZapMap(out, key, val)
	case string:
		return append(out, core.Field{Key: key, Type: core.StringType, Str: val})
	case bool:
		b := int64(0)
		if val {
			b = 1
		}
		return append(out, core.Field{Key: key, Type: core.BoolType, Int64: b})
	case int64:
		return append(out, core.Field{Key: key, Type: core.Int64Type, Int64: val})
	case int32:
		return append(out, core.Field{Key: key, Type: core.Int64Type, Int64: int64(val)})
	case int:
		return append(out, core.Field{Key: key, Type: core.Int64Type, Int64: int64(val)})
	case uint64:
		return append(out, core.Field{Key: key, Type: core.Uint64Type, Int64: int64(val)})
	case float64:
		return append(out, core.Field{Key: key, Type: core.Float64Type, Float64: val})
	case float32:
		return append(out, core.Field{Key: key, Type: core.Float64Type, Float64: float64(val)})
	case time.Duration:
		return append(out, core.Field{Key: key, Type: core.DurationType, Int64: int64(val)})
	case time.Time:
		return append(out, core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()})
	default:
		return append(out, core.Field{Key: key, Type: core.AnyType, Any: val})
	}
}
