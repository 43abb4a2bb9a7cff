package wiki

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// JSONWriter is a terminal listener writing the events it receives as a
// JSON array, one event object per line:
//
//	[
//	{"t":"BeginDocument","meta":{"syntax":"markdown/1.2"}},
//	{"t":"BeginParagraph"},
//	{"t":"OnWord","text":"Hello"},
//	...
//	]
//
// Every object carries the event name under "t" and the parameters of the
// event's signature. Write errors are latched: the first one stops all
// further output and is returned by Close.
type JSONWriter struct {
	EventFunc

	w   io.Writer
	buf []byte
	n   int
	err error
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	j := &JSONWriter{w: w}
	j.EventFunc = j.write
	return j
}

func (j *JSONWriter) write(e Event) {
	if j.err != nil {
		return
	}
	b := j.buf[:0]
	if j.n == 0 {
		b = append(b, "[\n"...)
	} else {
		b = append(b, ",\n"...)
	}
	b = AppendEvent(b, e)
	j.buf = b
	j.n++
	_, j.err = j.w.Write(b)
}

// Err returns the first write error.
func (j *JSONWriter) Err() error { return j.err }

// Close terminates the array and returns the first write error. An empty
// stream is written as [].
func (j *JSONWriter) Close() error {
	if j.err != nil {
		return j.err
	}
	tail := "\n]\n"
	if j.n == 0 {
		tail = "[]\n"
	}
	_, j.err = io.WriteString(j.w, tail)
	return j.err
}

// WriteEvents writes events as a complete JSON event stream.
func WriteEvents(w io.Writer, events []Event) error {
	j := NewJSONWriter(w)
	for _, e := range events {
		j.write(e)
	}
	return j.Close()
}

// AppendEvent appends the JSON object of a single event to b.
func AppendEvent(b []byte, e Event) []byte {
	f := e.Kind.Fields()
	b = append(b, `{"t":`...)
	b = appendQuote(b, e.Kind.String())
	if f&FieldMeta != 0 && len(e.Meta) > 0 {
		b = appendKey(b, "meta")
		b = appendMeta(b, e.Meta)
	}
	if f&FieldLevel != 0 {
		b = appendKey(b, "level")
		b = strconv.AppendInt(b, int64(e.Level), 10)
	}
	if f&FieldListType != 0 {
		b = appendKey(b, "list")
		b = appendQuote(b, e.ListType.String())
	}
	if f&FieldFormat != 0 {
		b = appendKey(b, "format")
		b = appendQuote(b, e.Format.String())
	}
	if f&FieldName != 0 {
		b = appendKey(b, "name")
		b = appendQuote(b, e.Name)
	}
	if f&FieldID != 0 && e.ID != "" {
		b = appendKey(b, "id")
		b = appendQuote(b, e.ID)
	}
	if f&FieldContent != 0 && e.Content != "" {
		b = appendKey(b, "content")
		b = appendQuote(b, e.Content)
	}
	if f&FieldText != 0 {
		b = appendKey(b, "text")
		b = appendQuote(b, e.Text)
	}
	if f&FieldInline != 0 && e.Inline {
		b = appendKey(b, "inline")
		b = append(b, "true"...)
	}
	if f&FieldFreestanding != 0 && e.Freestanding {
		b = appendKey(b, "freestanding")
		b = append(b, "true"...)
	}
	if f&FieldReference != 0 {
		b = appendKey(b, "ref")
		b = appendReference(b, e.Reference)
	}
	if f&FieldSyntax != 0 {
		b = appendKey(b, "syntax")
		b = appendQuote(b, e.Syntax.String())
	}
	if f&FieldCount != 0 {
		b = appendKey(b, "count")
		b = strconv.AppendInt(b, int64(e.Count), 10)
	}
	if f&FieldSymbol != 0 {
		b = appendKey(b, "symbol")
		b = appendQuote(b, string(e.Symbol))
	}
	if f&FieldParams != 0 && len(e.Params) > 0 {
		b = appendKey(b, "params")
		b = appendParams(b, e.Params)
	}
	return append(b, '}')
}

func appendKey(b []byte, name string) []byte {
	b = append(b, ',')
	b = appendQuote(b, name)
	return append(b, ':')
}

func appendParams(b []byte, p Params) []byte {
	b = append(b, '{')
	for i, kv := range p {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendQuote(b, kv.Key)
		b = append(b, ':')
		b = appendQuote(b, kv.Value)
	}
	return append(b, '}')
}

func appendMeta(b []byte, m MetaData) []byte {
	b = append(b, '{')
	for i, e := range m {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendQuote(b, e.Key)
		b = append(b, ':')
		b = appendMetaValue(b, e.Value)
	}
	return append(b, '}')
}

func appendMetaValue(b []byte, v any) []byte {
	switch v := v.(type) {
	case nil:
		return append(b, "null"...)
	case string:
		return appendQuote(b, v)
	case bool:
		return strconv.AppendBool(b, v)
	case int:
		return strconv.AppendInt(b, int64(v), 10)
	case int64:
		return strconv.AppendInt(b, v, 10)
	case float64:
		return strconv.AppendFloat(b, v, 'g', -1, 64)
	case fmt.Stringer:
		return appendQuote(b, v.String())
	default:
		return appendQuote(b, fmt.Sprint(v))
	}
}

func appendReference(b []byte, r ResourceReference) []byte {
	b = append(b, `{"type":`...)
	b = appendQuote(b, string(r.Type))
	b = append(b, `,"ref":`...)
	b = appendQuote(b, r.Reference)
	if r.Typed {
		b = append(b, `,"typed":true`...)
	}
	if len(r.Params) > 0 {
		b = append(b, `,"params":`...)
		b = appendParams(b, r.Params)
	}
	return append(b, '}')
}

const hex = "0123456789abcdef"

// appendQuote appends s as a JSON string. Invalid UTF-8 is replaced with
// U+FFFD.
func appendQuote(b []byte, s string) []byte {
	b = append(b, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			b = append(b, s[start:i]...)
			switch c {
			case '"', '\\':
				b = append(b, '\\', c)
			case '\b':
				b = append(b, '\\', 'b')
			case '\f':
				b = append(b, '\\', 'f')
			case '\n':
				b = append(b, '\\', 'n')
			case '\r':
				b = append(b, '\\', 'r')
			case '\t':
				b = append(b, '\\', 't')
			default:
				b = append(b, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b = append(b, s[start:i]...)
			b = append(b, "�"...)
			i += size
			start = i
			continue
		}
		i += size
	}
	b = append(b, s[start:]...)
	return append(b, '"')
}
