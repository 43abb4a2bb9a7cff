package wiki

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Simple streaming JSON scanner for event streams. It reads through a
// small sliding buffer, so a stream of any length is handled in constant
// memory apart from the values it yields.

type token int

const (
	tokErr token = iota - 1
	tokEOF
	tokLBrack
	tokRBrack
	tokLBrace
	tokRBrace
	tokComma
	tokColon
	tokStr
	tokNumber
	tokTrue
	tokFalse
	tokNull
)

var tokenNames = [...]string{"EOF", "[", "]", "{", "}", ",", ":", "string", "number", "true", "false", "null"}

func (t token) String() string {
	if t >= tokEOF && int(t-tokEOF) < len(tokenNames) {
		return tokenNames[t-tokEOF]
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type scanner struct {
	r   io.Reader       // reader
	buf []byte          // current buffer
	sb  strings.Builder // string buffer (for large and escaped strings)
	err error           // read or syntax error
	off int             // offset of the current buffer in the reader
	pos int             // next unread byte in the buffer
	str int             // start of the current string/number, -1 if there is none
	val string          // text of the last string or number token
}

func (p *scanner) init(r io.Reader) {
	var buf []byte
	if cap(p.buf) == 0 {
		buf = make([]byte, 0, 512)
	} else {
		buf = p.buf[:0]
	}
	*p = scanner{r: r, buf: buf, str: -1}
}

// fail records a syntax error at the current offset.
func (p *scanner) fail(format string, a ...any) token {
	if p.err == nil || p.err == io.EOF {
		p.err = fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.current(), fmt.Sprintf(format, a...))
	}
	return tokErr
}

// error returns the error that stopped the scanner, or a syntax error
// describing the unexpected token.
func (p *scanner) error(want string, got token) error {
	if p.err != nil && p.err != io.EOF {
		return p.err
	}
	return fmt.Errorf("%w at offset %d: expected %s, got %s", ErrSyntax, p.current(), want, got)
}

func (p *scanner) current() int {
	return p.off + p.pos
}

// string returns the text of the last string or number token.
func (p *scanner) string() string {
	return p.val
}

// endstr sets the token text to everything scanned since the token began.
func (p *scanner) endstr() {
	if p.sb.Len() != 0 {
		p.spillstr()
		p.val = p.sb.String()
	} else if p.str >= 0 {
		p.val = string(p.buf[p.str:p.pos])
	} else {
		p.val = ""
	}
	p.str = -1
}

// spillstr moves the part of the current string held in the buffer into
// the string buffer.
func (p *scanner) spillstr() {
	if p.str >= 0 {
		p.sb.Write(p.buf[p.str:p.pos])
	}
	p.str = -1
}

// ensure makes at least size bytes available after the current position,
// sliding the buffer left and refilling it. A string in progress is kept
// either in the buffer or in the string buffer.
func (p *scanner) ensure(size int) bool {
	bs := len(p.buf)
	if bs-p.pos >= size {
		return true
	}
	keep := p.pos
	if p.str >= 0 {
		if p.str == 0 && bs == cap(p.buf) {
			// the token fills the buffer
			p.sb.Write(p.buf[:p.pos])
			p.str = p.pos
		}
		keep = p.str
	}
	copy(p.buf, p.buf[keep:bs])
	bs -= keep
	p.pos -= keep
	p.off += keep
	if p.str >= 0 {
		p.str -= keep
	}
	for bs-p.pos < size && p.err == nil {
		n, err := p.r.Read(p.buf[bs:cap(p.buf)])
		bs += n
		if err != nil {
			p.err = err
		}
	}
	p.buf = p.buf[:bs]
	return bs-p.pos >= size
}

func (p *scanner) skipws() {
	for p.ensure(1) {
		switch p.buf[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *scanner) peek() token {
	p.skipws()
	if !p.ensure(1) {
		return tokEOF
	}
	switch p.buf[p.pos] {
	case ',':
		return tokComma
	case ':':
		return tokColon
	case '[':
		return tokLBrack
	case ']':
		return tokRBrack
	case '{':
		return tokLBrace
	case '}':
		return tokRBrace
	case '"':
		return tokStr
	case 'n':
		return tokNull
	case 't':
		return tokTrue
	case 'f':
		return tokFalse
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return tokNumber
	}
	return tokErr
}

func (p *scanner) next() token {
	p.str = -1
	p.val = ""
	p.skipws()
	if !p.ensure(1) {
		return tokEOF
	}
	switch c := p.buf[p.pos]; c {
	case '[':
		p.pos++
		return tokLBrack
	case ']':
		p.pos++
		return tokRBrack
	case '{':
		p.pos++
		return tokLBrace
	case '}':
		p.pos++
		return tokRBrace
	case ',':
		p.pos++
		return tokComma
	case ':':
		p.pos++
		return tokColon
	case 'n':
		return p.literal("null", tokNull)
	case 't':
		return p.literal("true", tokTrue)
	case 'f':
		return p.literal("false", tokFalse)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.parseNum()
	case '"':
		p.pos++
		return p.parseStr()
	default:
		return p.fail("unexpected character %q", c)
	}
}

func (p *scanner) literal(lit string, tok token) token {
	if p.ensure(len(lit)) && string(p.buf[p.pos:p.pos+len(lit)]) == lit {
		p.pos += len(lit)
		return tok
	}
	return p.fail("invalid literal")
}

func (p *scanner) expect(tok token) error {
	if t := p.next(); t != tok {
		return p.error(tok.String(), t)
	}
	return nil
}

// parseNum scans a number literal; its text is left in string().
func (p *scanner) parseNum() token {
	p.sb.Reset()
	p.str = p.pos
	for p.ensure(1) {
		switch p.buf[p.pos] {
		case '-', '+', '.', 'e', 'E', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			p.pos++
			continue
		}
		break
	}
	p.endstr()
	if _, err := strconv.ParseFloat(p.val, 64); err != nil {
		return p.fail("invalid number literal %q", p.string())
	}
	return tokNumber
}

func (p *scanner) parseStr() token {
	p.sb.Reset()
scan:
	p.str = p.pos
	for p.ensure(1) {
		switch c := p.buf[p.pos]; {
		case c == '"':
			p.endstr()
			p.pos++
			return tokStr
		case c == '\\':
			p.spillstr()
			p.pos++
			goto escape
		case c < 0x20:
			return p.fail("control character in string")
		case c >= utf8.RuneSelf:
			b := bits.LeadingZeros8(^c)
			if b < 2 || b > 4 {
				return p.fail("invalid UTF-8 encoding")
			}
			if !p.ensure(b) {
				return p.fail("unexpected EOF")
			}
			if _, n := utf8.DecodeRune(p.buf[p.pos:]); n != b {
				return p.fail("invalid UTF-8 encoding")
			}
			p.pos += b
		default:
			p.pos++
		}
	}
	return p.fail("unexpected EOF in string")
escape:
	if !p.ensure(1) {
		return p.fail("unexpected EOF in string")
	}
	switch c := p.buf[p.pos]; c {
	case '"', '/', '\\':
		p.sb.WriteByte(c)
	case 'b':
		p.sb.WriteByte('\b')
	case 'f':
		p.sb.WriteByte('\f')
	case 'n':
		p.sb.WriteByte('\n')
	case 'r':
		p.sb.WriteByte('\r')
	case 't':
		p.sb.WriteByte('\t')
	case 'u':
		p.pos++
		r, ok := p.hex4()
		if !ok {
			return p.fail("invalid unicode escape")
		}
		if utf16.IsSurrogate(r) {
			if !p.ensure(2) || p.buf[p.pos] != '\\' || p.buf[p.pos+1] != 'u' {
				return p.fail("unpaired surrogate")
			}
			p.pos += 2
			r2, ok := p.hex4()
			if !ok {
				return p.fail("invalid unicode escape")
			}
			if r = utf16.DecodeRune(r, r2); r == utf8.RuneError {
				return p.fail("invalid surrogate pair")
			}
		}
		p.sb.WriteRune(r)
		goto scan
	default:
		return p.fail("invalid escape sequence")
	}
	p.pos++
	goto scan
}

// hex4 reads the four hex digits of a \u escape.
func (p *scanner) hex4() (rune, bool) {
	if !p.ensure(4) {
		return 0, false
	}
	v, err := strconv.ParseUint(string(p.buf[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	p.pos += 4
	return rune(v), true
}
