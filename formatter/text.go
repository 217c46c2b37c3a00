package formatter

import (
	"bytes"

	"github.com/philipp01105/godotlog/core"
)

// TextFormatter renders entries as
//
//	YYYY-MM-DD HH:MM:SS LEVEL [module ]message[ key=value...]
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = ConsoleTimestamp
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as a console line
func (f *TextFormatter) Format(entry *core.Entry) string {
	buf := GetBuffer()
	f.FormatEntry(entry, buf)
	s := buf.String()
	PutBuffer(buf)
	return s
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelSpaced = [...]string{
	core.OffLevel:   " OFF ",
	core.ErrorLevel: " ERROR ",
	core.WarnLevel:  " WARN ",
	core.InfoLevel:  " INFO ",
	core.DebugLevel: " DEBUG ",
	core.TraceLevel: " TRACE ",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if entry.Level.Valid() {
		buf.WriteString(levelSpaced[entry.Level])
	} else {
		buf.WriteString(" UNKNOWN ")
	}

	if entry.Module != "" {
		buf.WriteString(entry.Module)
		buf.WriteByte(' ')
	}

	buf.WriteString(entry.Message)

	if f.OmitFields {
		return
	}
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
}
