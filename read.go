package wiki

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// ReadEvents reads a JSON event stream, as written by JSONWriter, and sends
// each event to l as soon as it is decoded. On error the events decoded so
// far have already been sent.
func ReadEvents(r io.Reader, l Listener) error {
	var s scanner
	s.init(r)
	if err := s.expect(tokLBrack); err != nil {
		return err
	}
	n := 0
	if s.peek() == tokRBrack {
		s.next()
	} else {
		for {
			e, err := readEvent(&s)
			if err != nil {
				return fmt.Errorf("event %d: %w", n, err)
			}
			e.Send(l)
			n++
			if t := s.next(); t == tokRBrack {
				break
			} else if t != tokComma {
				return s.error("',' or ']'", t)
			}
		}
	}
	if t := s.next(); t != tokEOF {
		return s.error("end of stream", t)
	}
	if s.err != nil && s.err != io.EOF {
		return s.err
	}
	log.Debug("read events", "count", n)
	return nil
}

// ReadEventSlice reads a whole JSON event stream.
func ReadEventSlice(r io.Reader) ([]Event, error) {
	q := NewQueue()
	err := ReadEvents(r, q)
	return q.Events(), err
}

func readEvent(s *scanner) (Event, error) {
	var (
		e    Event
		seen Field
	)
	err := readObject(s, func(key string) error {
		var (
			f   Field
			err error
		)
		switch key {
		case "t":
			var name string
			if name, err = readString(s); err != nil {
				return err
			}
			k, ok := ParseEventKind(name)
			if !ok {
				return fmt.Errorf("%w %q", ErrUnknownEvent, name)
			}
			e.Kind = k
			return nil
		case "params":
			f = FieldParams
			e.Params, err = readParams(s)
		case "meta":
			f = FieldMeta
			e.Meta, err = readMeta(s)
		case "level":
			f = FieldLevel
			var n int
			if n, err = readInt(s); err == nil {
				e.Level = HeaderLevel(n)
				if !e.Level.Valid() {
					return fmt.Errorf("%w: header level %d out of range", ErrSyntax, n)
				}
			}
		case "list":
			f = FieldListType
			e.ListType, err = readEnum(s, parseListType)
		case "format":
			f = FieldFormat
			e.Format, err = readEnum(s, parseFormat)
		case "id":
			f = FieldID
			e.ID, err = readString(s)
		case "name":
			f = FieldName
			e.Name, err = readString(s)
		case "content":
			f = FieldContent
			e.Content, err = readString(s)
		case "text":
			f = FieldText
			e.Text, err = readString(s)
		case "inline":
			f = FieldInline
			e.Inline, err = readBool(s)
		case "freestanding":
			f = FieldFreestanding
			e.Freestanding, err = readBool(s)
		case "ref":
			f = FieldReference
			e.Reference, err = readReference(s)
		case "syntax":
			f = FieldSyntax
			var str string
			str, err = readString(s)
			e.Syntax = ParseSyntax(str)
		case "count":
			f = FieldCount
			e.Count, err = readInt(s)
		case "symbol":
			f = FieldSymbol
			var str string
			if str, err = readString(s); err == nil {
				r, size := utf8.DecodeRuneInString(str)
				if size == 0 || size != len(str) {
					return fmt.Errorf("%w: symbol %q is not a single character", ErrSyntax, str)
				}
				e.Symbol = r
			}
		default:
			return fmt.Errorf("%w: unknown field %q", ErrSyntax, key)
		}
		seen |= f
		return err
	})
	if err != nil {
		return e, err
	}
	if e.Kind == KindNone {
		return e, fmt.Errorf("%w: missing event type", ErrSyntax)
	}
	if extra := seen &^ e.Kind.Fields(); extra != 0 {
		return e, fmt.Errorf("%w: fields %b not in the signature of %s", ErrSyntax, extra, e.Kind)
	}
	return e, nil
}

// readObject reads a JSON object, calling field for each key with the
// scanner positioned at the value.
func readObject(s *scanner, field func(key string) error) error {
	if err := s.expect(tokLBrace); err != nil {
		return err
	}
	if s.peek() == tokRBrace {
		s.next()
		return nil
	}
	for {
		key, err := readString(s)
		if err != nil {
			return err
		}
		if err := s.expect(tokColon); err != nil {
			return err
		}
		if err := field(key); err != nil {
			return err
		}
		switch t := s.next(); t {
		case tokRBrace:
			return nil
		case tokComma:
		default:
			return s.error("',' or '}'", t)
		}
	}
}

func readString(s *scanner) (string, error) {
	if err := s.expect(tokStr); err != nil {
		return "", err
	}
	return s.string(), nil
}

func readBool(s *scanner) (bool, error) {
	switch t := s.next(); t {
	case tokTrue:
		return true, nil
	case tokFalse:
		return false, nil
	default:
		return false, s.error("boolean", t)
	}
}

func readInt(s *scanner) (int, error) {
	if err := s.expect(tokNumber); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s.string())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrSyntax, s.string())
	}
	return n, nil
}

func readEnum[T any](s *scanner, parse func(string) (T, bool)) (T, error) {
	str, err := readString(s)
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := parse(str)
	if !ok {
		return v, fmt.Errorf("%w: unknown value %q", ErrSyntax, str)
	}
	return v, nil
}

func readParams(s *scanner) (Params, error) {
	p := Params{}
	err := readObject(s, func(key string) error {
		v, err := readString(s)
		if err != nil {
			return err
		}
		if _, dup := p.Get(key); dup {
			return fmt.Errorf("%w: duplicate parameter %q", ErrSyntax, key)
		}
		p = append(p, KV{key, v})
		return nil
	})
	return p, err
}

func readMeta(s *scanner) (MetaData, error) {
	m := MetaData{}
	err := readObject(s, func(key string) error {
		var v any
		switch t := s.next(); t {
		case tokStr:
			v = s.string()
			if key == MetaSyntax {
				v = ParseSyntax(s.string())
			}
		case tokTrue:
			v = true
		case tokFalse:
			v = false
		case tokNull:
			return nil
		case tokNumber:
			if n, err := strconv.ParseInt(s.string(), 10, 64); err == nil {
				v = n
			} else if f, err := strconv.ParseFloat(s.string(), 64); err == nil {
				v = f
			}
		default:
			return s.error("metadata value", t)
		}
		m = append(m, MetaEntry{key, v})
		return nil
	})
	return m, err
}

func readReference(s *scanner) (ResourceReference, error) {
	var ref ResourceReference
	err := readObject(s, func(key string) error {
		var err error
		switch key {
		case "type":
			var t string
			t, err = readString(s)
			ref.Type = ResourceType(t)
		case "ref":
			ref.Reference, err = readString(s)
		case "typed":
			ref.Typed, err = readBool(s)
		case "params":
			ref.Params, err = readParams(s)
		default:
			err = fmt.Errorf("%w: unknown reference field %q", ErrSyntax, key)
		}
		return err
	})
	return ref, err
}
