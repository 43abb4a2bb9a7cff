// Package wiki implements the event model of a wiki rendering pipeline: a
// fixed vocabulary of structural and textual events, the [Listener] interface
// that receives them, a [ListenerChain] of stateful [ChainingListener]s that
// observe and forward events in order, and a [Block] tree that can be built
// from an event stream ([Generator]) and turned back into one ([Block.Traverse]).
//
// Events flow synchronously: a producer calls a Listener method and every
// chained listener handles it before the call returns.
package wiki

import (
	"strconv"
	"strings"
)

// Block type tag
type Tag string

func (t Tag) Tag() Tag       { return t }
func (t Tag) String() string { return string(t) }

// Object with tag
type Tagged interface {
	Tag() Tag
}

// Parameter key-value pair.
type KV struct {
	Key   string
	Value string
}

// Event and block parameters. Keys are unique; order is kept for stable
// output but carries no meaning.
type Params []KV

// Returns a value of the given key or false if the key is not present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Returns a value of the given key or an empty string.
func (p Params) Value(key string) string {
	v, _ := p.Get(key)
	return v
}

// Returns a copy of parameters with the given key-value pair.
func (p Params) With(key, value string) Params {
	c := p.Clone()
	for i := range c {
		if c[i].Key == key {
			c[i].Value = value
			return c
		}
	}
	return append(c, KV{key, value})
}

// Returns a copy of parameters with the given key-value pairs.
func (p Params) WithKVs(pairs ...string) Params {
	c := p.Clone()
next:
	for i := 0; i+1 < len(pairs); i += 2 {
		for j := range c {
			if c[j].Key == pairs[i] {
				c[j].Value = pairs[i+1]
				continue next
			}
		}
		c = append(c, KV{pairs[i], pairs[i+1]})
	}
	return c
}

// Returns a copy of parameters without the given key.
func (p Params) Without(key string) Params {
	c := make(Params, 0, len(p))
	for _, kv := range p {
		if kv.Key != key {
			c = append(c, kv)
		}
	}
	return c
}

// Returns a copy of parameters. A nil receiver yields nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	return append(make(Params, 0, len(p)), p...)
}

// Well-known metadata keys.
const (
	MetaSource  = "source"
	MetaSyntax  = "syntax"
	MetaBaseURL = "base"
)

// Metadata entry.
type MetaEntry struct {
	Key   string
	Value any
}

// Document or scope metadata. Values are strings, booleans, numbers or
// Syntax values.
type MetaData []MetaEntry

// Returns a value of the given key or nil if the key is not present.
func (m MetaData) Get(key string) any {
	for _, e := range m {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Sets a value for the given key. If the value is nil, the key is removed.
func (m *MetaData) Set(key string, value any) {
	for i, e := range *m {
		if e.Key == key {
			if value == nil {
				*m = append((*m)[:i], (*m)[i+1:]...)
			} else {
				(*m)[i].Value = value
			}
			return
		}
	}
	if value != nil {
		*m = append(*m, MetaEntry{key, value})
	}
}

// Returns a copy of metadata with the given entry set.
func (m MetaData) With(key string, value any) MetaData {
	c := append(make(MetaData, 0, len(m)+1), m...)
	c.Set(key, value)
	return c
}

// List kind
type ListType int

const (
	ListBulleted ListType = iota
	ListNumbered
)

var listTypeNames = [...]string{"bulleted", "numbered"}

func (t ListType) String() string {
	if int(t) < len(listTypeNames) {
		return listTypeNames[t]
	}
	return "ListType(" + strconv.Itoa(int(t)) + ")"
}

func parseListType(s string) (ListType, bool) {
	for i, n := range listTypeNames {
		if n == s {
			return ListType(i), true
		}
	}
	return 0, false
}

// Header level, 1 to 6.
type HeaderLevel int

const (
	Level1 HeaderLevel = iota + 1
	Level2
	Level3
	Level4
	Level5
	Level6
)

// Returns the section nesting depth of the level, 0 to 5.
func (l HeaderLevel) Depth() int { return int(l) - 1 }

func (l HeaderLevel) Valid() bool { return l >= Level1 && l <= Level6 }

// Inline formatting
type Format int

const (
	FormatNone Format = iota
	FormatBold
	FormatItalic
	FormatUnderlined
	FormatStrikedOut
	FormatSuperscript
	FormatSubscript
	FormatMonospace
)

var formatNames = [...]string{"none", "bold", "italic", "underlined", "strikedout", "superscript", "subscript", "monospace"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

func parseFormat(s string) (Format, bool) {
	for i, n := range formatNames {
		if n == s {
			return Format(i), true
		}
	}
	return 0, false
}

// Syntax of raw content, e.g. "html/5.0".
type Syntax struct {
	ID      string
	Version string
}

var (
	SyntaxHTML     = Syntax{"html", "5.0"}
	SyntaxXHTML    = Syntax{"xhtml", "1.0"}
	SyntaxPlain    = Syntax{"plain", "1.0"}
	SyntaxMarkdown = Syntax{"markdown", "1.2"}
)

func (s Syntax) String() string {
	if s.Version == "" {
		return s.ID
	}
	return s.ID + "/" + s.Version
}

// Parses "id/version" or a bare "id".
func ParseSyntax(s string) Syntax {
	if id, version, ok := strings.Cut(s, "/"); ok {
		return Syntax{id, version}
	}
	return Syntax{ID: s}
}

// Kind of resource a reference points to.
type ResourceType string

const (
	ResourceURL        ResourceType = "url"
	ResourceDocument   ResourceType = "doc"
	ResourcePage       ResourceType = "page"
	ResourceSpace      ResourceType = "space"
	ResourceMailTo     ResourceType = "mailto"
	ResourceAttachment ResourceType = "attach"
	ResourcePath       ResourceType = "path"
	ResourceInterWiki  ResourceType = "interwiki"
	ResourceData       ResourceType = "data"
	ResourceIcon       ResourceType = "icon"
	ResourceUnknown    ResourceType = "unknown"
)

// Reference to a link or image target.
type ResourceReference struct {
	Type      ResourceType
	Reference string
	Typed     bool // the type was given explicitly in the source
	Params    Params
}

func (r ResourceReference) String() string {
	if r.Typed || r.Type == ResourceUnknown {
		return string(r.Type) + ":" + r.Reference
	}
	return r.Reference
}

// Returns a copy of the reference with the given parameter.
func (r ResourceReference) WithParam(key, value string) ResourceReference {
	r.Params = r.Params.With(key, value)
	return r
}
