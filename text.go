package wiki

import (
	"unicode"
	"unicode/utf8"
)

// IsSpecialSymbol reports whether r is sent as a special symbol rather than
// as part of a word: any printable ASCII character that is neither a letter,
// a digit nor a space.
func IsSpecialSymbol(r rune) bool {
	return r > ' ' && r < utf8.RuneSelf && r != 0x7f &&
		!('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
}

// SendText sends s to l as words, spaces and special symbols. A run of
// white space becomes a single space.
func SendText(l Listener, s string) {
	start := -1
	space := false
	flush := func(end int) {
		if start >= 0 {
			l.OnWord(s[start:end])
			start = -1
		}
	}
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush(i)
			if !space {
				l.OnSpace()
			}
			space = true
			continue
		case IsSpecialSymbol(r):
			flush(i)
			l.OnSpecialSymbol(r)
		default:
			if start < 0 {
				start = i
			}
		}
		space = false
	}
	flush(len(s))
}
