// Package markdown produces wiki events from CommonMark documents with the
// GitHub extensions, parsed by goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"

	"github.com/growler/go-wiki"
)

var log = commonlog.GetLogger("wiki.markdown")

// Extension names accepted by ExtensionsByName.
const (
	ExtTable          = "table"
	ExtStrikethrough  = "strikethrough"
	ExtLinkify        = "linkify"
	ExtTaskList       = "tasklist"
	ExtDefinitionList = "definitionlist"
)

var extensions = map[string]goldmark.Extender{
	ExtTable:          extension.Table,
	ExtStrikethrough:  extension.Strikethrough,
	ExtLinkify:        extension.Linkify,
	ExtTaskList:       extension.TaskList,
	ExtDefinitionList: extension.DefinitionList,
}

// DefaultExtensions are enabled by New unless WithExtensions is given.
var DefaultExtensions = []string{ExtTable, ExtStrikethrough, ExtLinkify, ExtTaskList, ExtDefinitionList}

// ExtensionsByName resolves extension names.
func ExtensionsByName(names []string) ([]goldmark.Extender, error) {
	exts := make([]goldmark.Extender, 0, len(names))
	for _, n := range names {
		e, ok := extensions[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown markdown extension %q", n)
		}
		exts = append(exts, e)
	}
	return exts, nil
}

type Option func(*Parser)

// WithExtensions replaces the default extensions.
func WithExtensions(ext ...goldmark.Extender) Option {
	return func(p *Parser) { p.ext = ext }
}

// WithMeta adds entries to the metadata of every produced document.
func WithMeta(meta wiki.MetaData) Option {
	return func(p *Parser) { p.meta = meta }
}

// Parser turns markdown sources into event streams.
type Parser struct {
	ext  []goldmark.Extender
	meta wiki.MetaData
	md   goldmark.Markdown
}

func New(opts ...Option) *Parser {
	p := &Parser{}
	p.ext, _ = ExtensionsByName(DefaultExtensions)
	for _, o := range opts {
		o(p)
	}
	p.md = goldmark.New(
		goldmark.WithExtensions(p.ext...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return p
}

// Parse sends the events of the markdown document src to l.
func (p *Parser) Parse(src []byte, l wiki.Listener) error {
	return p.parse(src, p.meta, l)
}

// ParseFile sends the events of the markdown file to l. The document
// metadata records the file as its source.
func (p *Parser) ParseFile(path string, l wiki.Listener) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := p.parse(src, p.meta.With(wiki.MetaSource, path), l); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (p *Parser) parse(src []byte, meta wiki.MetaData, l wiki.Listener) error {
	doc := p.md.Parser().Parse(text.NewReader(src))
	e := &emitter{
		src:  src,
		l:    l,
		meta: meta.With(wiki.MetaSyntax, wiki.SyntaxMarkdown),
	}
	if err := ast.Walk(doc, e.walk); err != nil {
		return err
	}
	log.Debugf("parsed %d bytes of markdown", len(src))
	return nil
}

type emitter struct {
	src  []byte
	l    wiki.Listener
	meta wiki.MetaData
}

func (e *emitter) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	l := e.l
	switch n := n.(type) {
	case *ast.Document:
		if entering {
			l.BeginDocument(e.meta)
		} else {
			l.EndDocument(e.meta)
		}
	case *ast.Heading:
		level := wiki.HeaderLevel(n.Level)
		id := headingID(n)
		if entering {
			l.BeginHeader(level, id, nil)
		} else {
			l.EndHeader(level, id, nil)
		}
	case *ast.Paragraph:
		if _, ok := n.Parent().(*ast.Blockquote); ok {
			if entering {
				l.BeginQuotationLine()
			} else {
				l.EndQuotationLine()
			}
		} else if entering {
			l.BeginParagraph(nil)
		} else {
			l.EndParagraph(nil)
		}
	case *ast.TextBlock:
	case *ast.Blockquote:
		if entering {
			l.BeginQuotation(nil)
		} else {
			l.EndQuotation(nil)
		}
	case *ast.List:
		typ, params := wiki.ListBulleted, wiki.Params(nil)
		if n.IsOrdered() {
			typ = wiki.ListNumbered
			if n.Start > 1 {
				params = params.With("start", strconv.Itoa(n.Start))
			}
		}
		if entering {
			l.BeginList(typ, params)
		} else {
			l.EndList(typ, params)
		}
	case *ast.ListItem:
		if entering {
			l.BeginListItem(nil)
		} else {
			l.EndListItem(nil)
		}
	case *ast.FencedCodeBlock:
		if entering {
			var params wiki.Params
			if lang := n.Language(e.src); len(lang) > 0 {
				params = params.With("language", string(lang))
			}
			l.OnMacro("code", params, e.lines(n), false)
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeBlock:
		if entering {
			l.OnVerbatim(e.lines(n), false, nil)
		}
		return ast.WalkSkipChildren, nil
	case *ast.ThematicBreak:
		if entering {
			l.OnHorizontalLine(nil)
		}
	case *ast.HTMLBlock:
		if entering {
			s := e.lines(n)
			if n.HasClosure() {
				s += string(n.ClosureLine.Value(e.src))
			}
			l.OnRawText(s, wiki.SyntaxHTML)
		}
		return ast.WalkSkipChildren, nil
	case *ast.Text:
		if entering {
			e.text(n.Segment.Value(e.src))
			switch {
			case n.HardLineBreak():
				l.OnNewLine()
			case n.SoftLineBreak():
				l.OnSpace()
			}
		}
	case *ast.String:
		if entering {
			e.text(n.Value)
		}
	case *ast.CodeSpan:
		if entering {
			l.OnVerbatim(plainText(n, e.src), true, nil)
		}
		return ast.WalkSkipChildren, nil
	case *ast.Emphasis:
		f := wiki.FormatItalic
		if n.Level >= 2 {
			f = wiki.FormatBold
		}
		if entering {
			l.BeginFormat(f, nil)
		} else {
			l.EndFormat(f, nil)
		}
	case *east.Strikethrough:
		if entering {
			l.BeginFormat(wiki.FormatStrikedOut, nil)
		} else {
			l.EndFormat(wiki.FormatStrikedOut, nil)
		}
	case *ast.Link:
		ref := reference(string(n.Destination))
		var params wiki.Params
		if len(n.Title) > 0 {
			params = params.With("title", string(n.Title))
		}
		if entering {
			l.BeginLink(ref, false, params)
		} else {
			l.EndLink(ref, false, params)
		}
	case *ast.AutoLink:
		if entering {
			dest := string(n.URL(e.src))
			if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(dest, "mailto:") {
				dest = "mailto:" + dest
			}
			ref := reference(dest)
			l.BeginLink(ref, true, nil)
			l.EndLink(ref, true, nil)
		}
		return ast.WalkSkipChildren, nil
	case *ast.Image:
		if entering {
			var params wiki.Params
			if alt := plainText(n, e.src); alt != "" {
				params = params.With("alt", alt)
			}
			if len(n.Title) > 0 {
				params = params.With("title", string(n.Title))
			}
			l.OnImage(reference(string(n.Destination)), false, "", params)
		}
		return ast.WalkSkipChildren, nil
	case *ast.RawHTML:
		if entering {
			var b bytes.Buffer
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				b.Write(seg.Value(e.src))
			}
			l.OnRawText(b.String(), wiki.SyntaxHTML)
		}
		return ast.WalkSkipChildren, nil
	case *east.Table:
		if entering {
			l.BeginTable(nil)
		} else {
			l.EndTable(nil)
		}
	case *east.TableHeader, *east.TableRow:
		if entering {
			l.BeginTableRow(nil)
		} else {
			l.EndTableRow(nil)
		}
	case *east.TableCell:
		var params wiki.Params
		if n.Alignment != east.AlignNone {
			params = params.With("align", n.Alignment.String())
		}
		_, head := n.Parent().(*east.TableHeader)
		switch {
		case head && entering:
			l.BeginTableHeadCell(params)
		case head:
			l.EndTableHeadCell(params)
		case entering:
			l.BeginTableCell(params)
		default:
			l.EndTableCell(params)
		}
	case *east.TaskCheckBox:
		if entering {
			l.OnMacro("checkbox", wiki.Params{{Key: "checked", Value: strconv.FormatBool(n.IsChecked)}}, "", true)
		}
	case *east.DefinitionList:
		if entering {
			l.BeginDefinitionList(nil)
		} else {
			l.EndDefinitionList(nil)
		}
	case *east.DefinitionTerm:
		if entering {
			l.BeginDefinitionTerm()
		} else {
			l.EndDefinitionTerm()
		}
	case *east.DefinitionDescription:
		if entering {
			l.BeginDefinitionDescription()
		} else {
			l.EndDefinitionDescription()
		}
	default:
		if entering {
			log.Debugf("skipping markdown node %s", n.Kind())
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

// text sends NFC normalized text as words, spaces and symbols.
func (e *emitter) text(b []byte) {
	wiki.SendText(e.l, norm.NFC.String(string(b)))
}

type lineNode interface {
	Lines() *text.Segments
}

func (e *emitter) lines(n lineNode) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(e.src))
	}
	return b.String()
}

// plainText returns the text content of the inline children of n.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return norm.NFC.String(b.String())
}

func headingID(n *ast.Heading) string {
	v, ok := n.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// reference classifies a link or image destination.
func reference(dest string) wiki.ResourceReference {
	switch {
	case strings.HasPrefix(dest, "mailto:"):
		return wiki.ResourceReference{Type: wiki.ResourceMailTo, Reference: strings.TrimPrefix(dest, "mailto:"), Typed: true}
	case strings.Contains(dest, "://"):
		return wiki.ResourceReference{Type: wiki.ResourceURL, Reference: dest}
	case strings.HasPrefix(dest, "data:"):
		return wiki.ResourceReference{Type: wiki.ResourceData, Reference: strings.TrimPrefix(dest, "data:"), Typed: true}
	default:
		return wiki.ResourceReference{Type: wiki.ResourceDocument, Reference: dest}
	}
}
