// Package dot provides terse constructors for building wiki block trees,
// meant to be dot-imported in tests and tree-building code.
package dot

import (
	"github.com/growler/go-wiki"
)

var (
	Continue = wiki.WalkContinue
	Replace  = wiki.WalkReplace
	Skip     = wiki.WalkSkip
	Stop     = wiki.WalkStop
)

var NoParams wiki.Params

func Blocks(b ...wiki.Block) []wiki.Block {
	return b
}

func KVs(kvs ...string) wiki.Params {
	return wiki.Params(nil).WithKVs(kvs...)
}

// Document root (list of blocks)
func Doc(meta wiki.MetaData, b ...wiki.Block) *wiki.Document {
	return wiki.NewBlock(&wiki.Document{Meta: meta}, nil, b...)
}

func Group(params wiki.Params, b ...wiki.Block) *wiki.Group {
	return wiki.NewBlock(&wiki.Group{}, params, b...)
}

func Para(b ...wiki.Block) *wiki.Paragraph {
	return wiki.NewBlock(&wiki.Paragraph{}, nil, b...)
}

func ParaP(params wiki.Params, b ...wiki.Block) *wiki.Paragraph {
	return wiki.NewBlock(&wiki.Paragraph{}, params, b...)
}

// Formatted text. The first argument is the format.
func Format(f wiki.Format, b ...wiki.Block) *wiki.FormatBlock {
	return wiki.NewBlock(&wiki.FormatBlock{Format: f}, nil, b...)
}

func Bold(b ...wiki.Block) *wiki.FormatBlock {
	return Format(wiki.FormatBold, b...)
}

func Italic(b ...wiki.Block) *wiki.FormatBlock {
	return Format(wiki.FormatItalic, b...)
}

func Monospace(b ...wiki.Block) *wiki.FormatBlock {
	return Format(wiki.FormatMonospace, b...)
}

// Bulleted list (list of items)
func BulletList(i ...*wiki.ListItem) *wiki.BulletedList {
	return wiki.NewBlock(&wiki.BulletedList{}, nil, items(i)...)
}

// Numbered list (list of items)
func NumberList(i ...*wiki.ListItem) *wiki.NumberedList {
	return wiki.NewBlock(&wiki.NumberedList{}, nil, items(i)...)
}

func items(i []*wiki.ListItem) []wiki.Block {
	b := make([]wiki.Block, len(i))
	for n := range i {
		b[n] = i[n]
	}
	return b
}

func Item(b ...wiki.Block) *wiki.ListItem {
	return wiki.NewBlock(&wiki.ListItem{}, nil, b...)
}

// Definition list (terms and descriptions)
func DefList(b ...wiki.Block) *wiki.DefinitionList {
	return wiki.NewBlock(&wiki.DefinitionList{}, nil, b...)
}

func Term(b ...wiki.Block) *wiki.DefinitionTerm {
	return wiki.NewBlock(&wiki.DefinitionTerm{}, nil, b...)
}

func Desc(b ...wiki.Block) *wiki.DefinitionDescription {
	return wiki.NewBlock(&wiki.DefinitionDescription{}, nil, b...)
}

func Section(b ...wiki.Block) *wiki.Section {
	return wiki.NewBlock(&wiki.Section{}, nil, b...)
}

// Header (list of inline blocks). The first argument is the level.
func Header(level wiki.HeaderLevel, id string, b ...wiki.Block) *wiki.Header {
	return wiki.NewBlock(&wiki.Header{Level: level, ID: id}, nil, b...)
}

func Quote(b ...wiki.Block) *wiki.Quotation {
	return wiki.NewBlock(&wiki.Quotation{}, nil, b...)
}

func QuoteLine(b ...wiki.Block) *wiki.QuotationLine {
	return wiki.NewBlock(&wiki.QuotationLine{}, nil, b...)
}

func Table(r ...*wiki.TableRow) *wiki.Table {
	b := make([]wiki.Block, len(r))
	for n := range r {
		b[n] = r[n]
	}
	return wiki.NewBlock(&wiki.Table{}, nil, b...)
}

func Row(c ...wiki.Block) *wiki.TableRow {
	return wiki.NewBlock(&wiki.TableRow{}, nil, c...)
}

func Cell(b ...wiki.Block) *wiki.TableCell {
	return wiki.NewBlock(&wiki.TableCell{}, nil, b...)
}

func HeadCell(b ...wiki.Block) *wiki.TableHeadCell {
	return wiki.NewBlock(&wiki.TableHeadCell{}, nil, b...)
}

// Link (list of inline blocks as label).
func Link(ref wiki.ResourceReference, b ...wiki.Block) *wiki.Link {
	return wiki.NewBlock(&wiki.Link{Reference: ref}, nil, b...)
}

// Reference to a URL.
func URL(u string) wiki.ResourceReference {
	return wiki.ResourceReference{Type: wiki.ResourceURL, Reference: u}
}

// Reference to a wiki document.
func DocRef(d string) wiki.ResourceReference {
	return wiki.ResourceReference{Type: wiki.ResourceDocument, Reference: d}
}

func Image(ref wiki.ResourceReference, params wiki.Params) *wiki.Image {
	return wiki.NewBlock(&wiki.Image{Reference: ref}, params)
}

func Figure(b ...wiki.Block) *wiki.Figure {
	return wiki.NewBlock(&wiki.Figure{}, nil, b...)
}

func Caption(b ...wiki.Block) *wiki.FigureCaption {
	return wiki.NewBlock(&wiki.FigureCaption{}, nil, b...)
}

func Meta(meta wiki.MetaData, b ...wiki.Block) *wiki.MetaDataBlock {
	return wiki.NewBlock(&wiki.MetaDataBlock{Meta: meta}, nil, b...)
}

// Macro expansion result. The first arguments describe the macro call.
func Marker(name string, params wiki.Params, content string, inline bool, b ...wiki.Block) *wiki.MacroMarker {
	return wiki.NewBlock(&wiki.MacroMarker{Name: name, Content: content, Inline: inline}, params, b...)
}

func Macro(name string, params wiki.Params, content string, inline bool) *wiki.Macro {
	return wiki.NewBlock(&wiki.Macro{Name: name, Content: content, Inline: inline}, params)
}

func Word(s string) *wiki.Word {
	return wiki.NewBlock(&wiki.Word{Text: s}, nil)
}

// Inter-word space
func Space() *wiki.Space { return wiki.NewBlock(&wiki.Space{}, nil) }

// Line break
func NewLine() *wiki.NewLine { return wiki.NewBlock(&wiki.NewLine{}, nil) }

func Symbol(r rune) *wiki.SpecialSymbol {
	return wiki.NewBlock(&wiki.SpecialSymbol{Symbol: r}, nil)
}

// Anchor
func ID(name string) *wiki.ID {
	return wiki.NewBlock(&wiki.ID{Name: name}, nil)
}

// Horizontal rule.
func HorizontalLine() *wiki.HorizontalLine {
	return wiki.NewBlock(&wiki.HorizontalLine{}, nil)
}

func EmptyLines(n int) *wiki.EmptyLines {
	return wiki.NewBlock(&wiki.EmptyLines{Count: n}, nil)
}

func Verbatim(content string, inline bool) *wiki.Verbatim {
	return wiki.NewBlock(&wiki.Verbatim{Content: content, Inline: inline}, nil)
}

func Raw(syntax wiki.Syntax, text string) *wiki.Raw {
	return wiki.NewBlock(&wiki.Raw{Text: text, Syntax: syntax}, nil)
}

// Text splits s into words, spaces and special symbols the way producers
// do (see wiki.SendText).
func Text(s string) []wiki.Block {
	g := wiki.NewGenerator()
	wiki.SendText(g, s)
	return g.Blocks()
}

func Query[P any](root wiki.Block, fun func(P) wiki.WalkResult) {
	wiki.Query(root, fun)
}

func Filter[P wiki.Block](root wiki.Block, fun func(P) ([]wiki.Block, wiki.WalkResult)) {
	wiki.Filter(root, fun)
}
