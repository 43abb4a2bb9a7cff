package wiki

import (
	"slices"
)

// Document root
type Document struct {
	node

	Meta MetaData
}

const DocumentTag = Tag("Document")

func (b *Document) Tag() Tag { return DocumentTag }
func (b *Document) clone() Block {
	c := *b
	c.Meta = slices.Clone(b.Meta)
	return &c
}
func (b *Document) before(l Listener) { l.BeginDocument(b.Meta) }
func (b *Document) after(l Listener)  { l.EndDocument(b.Meta) }

// Group of blocks, scoping stackable listener state
type Group struct {
	node
}

const GroupTag = Tag("Group")

func (b *Group) Tag() Tag { return GroupTag }
func (b *Group) clone() Block {
	c := *b
	return &c
}
func (b *Group) before(l Listener) { l.BeginGroup(b.params) }
func (b *Group) after(l Listener)  { l.EndGroup(b.params) }

// Formatted inline content
type FormatBlock struct {
	node

	Format Format
}

const FormatBlockTag = Tag("FormatBlock")

func (b *FormatBlock) Tag() Tag { return FormatBlockTag }
func (b *FormatBlock) clone() Block {
	c := *b
	return &c
}
func (b *FormatBlock) before(l Listener) { l.BeginFormat(b.Format, b.params) }
func (b *FormatBlock) after(l Listener)  { l.EndFormat(b.Format, b.params) }

// Paragraph
type Paragraph struct {
	node
}

const ParagraphTag = Tag("Paragraph")

func (b *Paragraph) Tag() Tag { return ParagraphTag }
func (b *Paragraph) clone() Block {
	c := *b
	return &c
}
func (b *Paragraph) before(l Listener) { l.BeginParagraph(b.params) }
func (b *Paragraph) after(l Listener)  { l.EndParagraph(b.params) }

// Bulleted list (of ListItem)
type BulletedList struct {
	node
}

const BulletedListTag = Tag("BulletedList")

func (b *BulletedList) Tag() Tag { return BulletedListTag }
func (b *BulletedList) clone() Block {
	c := *b
	return &c
}
func (b *BulletedList) before(l Listener) { l.BeginList(ListBulleted, b.params) }
func (b *BulletedList) after(l Listener)  { l.EndList(ListBulleted, b.params) }

// Numbered list (of ListItem)
type NumberedList struct {
	node
}

const NumberedListTag = Tag("NumberedList")

func (b *NumberedList) Tag() Tag { return NumberedListTag }
func (b *NumberedList) clone() Block {
	c := *b
	return &c
}
func (b *NumberedList) before(l Listener) { l.BeginList(ListNumbered, b.params) }
func (b *NumberedList) after(l Listener)  { l.EndList(ListNumbered, b.params) }

// List item
type ListItem struct {
	node
}

const ListItemTag = Tag("ListItem")

func (b *ListItem) Tag() Tag { return ListItemTag }
func (b *ListItem) clone() Block {
	c := *b
	return &c
}
func (b *ListItem) before(l Listener) { l.BeginListItem(b.params) }
func (b *ListItem) after(l Listener)  { l.EndListItem(b.params) }

// Definition list (of DefinitionTerm and DefinitionDescription)
type DefinitionList struct {
	node
}

const DefinitionListTag = Tag("DefinitionList")

func (b *DefinitionList) Tag() Tag { return DefinitionListTag }
func (b *DefinitionList) clone() Block {
	c := *b
	return &c
}
func (b *DefinitionList) before(l Listener) { l.BeginDefinitionList(b.params) }
func (b *DefinitionList) after(l Listener)  { l.EndDefinitionList(b.params) }

// Term of a definition list
type DefinitionTerm struct {
	node
}

const DefinitionTermTag = Tag("DefinitionTerm")

func (b *DefinitionTerm) Tag() Tag { return DefinitionTermTag }
func (b *DefinitionTerm) clone() Block {
	c := *b
	return &c
}
func (b *DefinitionTerm) before(l Listener) { l.BeginDefinitionTerm() }
func (b *DefinitionTerm) after(l Listener)  { l.EndDefinitionTerm() }

// Description of a definition list term
type DefinitionDescription struct {
	node
}

const DefinitionDescriptionTag = Tag("DefinitionDescription")

func (b *DefinitionDescription) Tag() Tag { return DefinitionDescriptionTag }
func (b *DefinitionDescription) clone() Block {
	c := *b
	return &c
}
func (b *DefinitionDescription) before(l Listener) { l.BeginDefinitionDescription() }
func (b *DefinitionDescription) after(l Listener)  { l.EndDefinitionDescription() }

// Result of a macro expansion, with the macro call it came from
type MacroMarker struct {
	node

	Name    string
	Content string
	Inline  bool
}

const MacroMarkerTag = Tag("MacroMarker")

func (b *MacroMarker) Tag() Tag { return MacroMarkerTag }
func (b *MacroMarker) clone() Block {
	c := *b
	return &c
}
func (b *MacroMarker) before(l Listener) { l.BeginMacroMarker(b.Name, b.params, b.Content, b.Inline) }
func (b *MacroMarker) after(l Listener)  { l.EndMacroMarker(b.Name, b.params, b.Content, b.Inline) }

// Section
type Section struct {
	node
}

const SectionTag = Tag("Section")

func (b *Section) Tag() Tag { return SectionTag }
func (b *Section) clone() Block {
	c := *b
	return &c
}
func (b *Section) before(l Listener) { l.BeginSection(b.params) }
func (b *Section) after(l Listener)  { l.EndSection(b.params) }

// Header (level, identifier, inline content)
type Header struct {
	node

	Level HeaderLevel
	ID    string
}

const HeaderTag = Tag("Header")

func (b *Header) Tag() Tag { return HeaderTag }
func (b *Header) clone() Block {
	c := *b
	return &c
}
func (b *Header) before(l Listener) { l.BeginHeader(b.Level, b.ID, b.params) }
func (b *Header) after(l Listener)  { l.EndHeader(b.Level, b.ID, b.params) }

// Quotation (of QuotationLine or nested Quotation)
type Quotation struct {
	node
}

const QuotationTag = Tag("Quotation")

func (b *Quotation) Tag() Tag { return QuotationTag }
func (b *Quotation) clone() Block {
	c := *b
	return &c
}
func (b *Quotation) before(l Listener) { l.BeginQuotation(b.params) }
func (b *Quotation) after(l Listener)  { l.EndQuotation(b.params) }

// Line of a quotation
type QuotationLine struct {
	node
}

const QuotationLineTag = Tag("QuotationLine")

func (b *QuotationLine) Tag() Tag { return QuotationLineTag }
func (b *QuotationLine) clone() Block {
	c := *b
	return &c
}
func (b *QuotationLine) before(l Listener) { l.BeginQuotationLine() }
func (b *QuotationLine) after(l Listener)  { l.EndQuotationLine() }

// Table (of TableRow)
type Table struct {
	node
}

const TableTag = Tag("Table")

func (b *Table) Tag() Tag { return TableTag }
func (b *Table) clone() Block {
	c := *b
	return &c
}
func (b *Table) before(l Listener) { l.BeginTable(b.params) }
func (b *Table) after(l Listener)  { l.EndTable(b.params) }

// Table row (of TableCell and TableHeadCell)
type TableRow struct {
	node
}

const TableRowTag = Tag("TableRow")

func (b *TableRow) Tag() Tag { return TableRowTag }
func (b *TableRow) clone() Block {
	c := *b
	return &c
}
func (b *TableRow) before(l Listener) { l.BeginTableRow(b.params) }
func (b *TableRow) after(l Listener)  { l.EndTableRow(b.params) }

// Table cell
type TableCell struct {
	node
}

const TableCellTag = Tag("TableCell")

func (b *TableCell) Tag() Tag { return TableCellTag }
func (b *TableCell) clone() Block {
	c := *b
	return &c
}
func (b *TableCell) before(l Listener) { l.BeginTableCell(b.params) }
func (b *TableCell) after(l Listener)  { l.EndTableCell(b.params) }

// Table head cell
type TableHeadCell struct {
	node
}

const TableHeadCellTag = Tag("TableHeadCell")

func (b *TableHeadCell) Tag() Tag { return TableHeadCellTag }
func (b *TableHeadCell) clone() Block {
	c := *b
	return &c
}
func (b *TableHeadCell) before(l Listener) { l.BeginTableHeadCell(b.params) }
func (b *TableHeadCell) after(l Listener)  { l.EndTableHeadCell(b.params) }

// Link (reference, label)
type Link struct {
	node

	Reference    ResourceReference
	Freestanding bool
}

const LinkTag = Tag("Link")

func (b *Link) Tag() Tag { return LinkTag }
func (b *Link) clone() Block {
	c := *b
	c.Reference.Params = b.Reference.Params.Clone()
	return &c
}
func (b *Link) before(l Listener) { l.BeginLink(b.Reference, b.Freestanding, b.params) }
func (b *Link) after(l Listener)  { l.EndLink(b.Reference, b.Freestanding, b.params) }

// Metadata scope
type MetaDataBlock struct {
	node

	Meta MetaData
}

const MetaDataBlockTag = Tag("MetaDataBlock")

func (b *MetaDataBlock) Tag() Tag { return MetaDataBlockTag }
func (b *MetaDataBlock) clone() Block {
	c := *b
	c.Meta = slices.Clone(b.Meta)
	return &c
}
func (b *MetaDataBlock) before(l Listener) { l.BeginMetaData(b.Meta) }
func (b *MetaDataBlock) after(l Listener)  { l.EndMetaData(b.Meta) }

// Figure
type Figure struct {
	node
}

const FigureTag = Tag("Figure")

func (b *Figure) Tag() Tag { return FigureTag }
func (b *Figure) clone() Block {
	c := *b
	return &c
}
func (b *Figure) before(l Listener) { l.BeginFigure(b.params) }
func (b *Figure) after(l Listener)  { l.EndFigure(b.params) }

// Figure caption
type FigureCaption struct {
	node
}

const FigureCaptionTag = Tag("FigureCaption")

func (b *FigureCaption) Tag() Tag { return FigureCaptionTag }
func (b *FigureCaption) clone() Block {
	c := *b
	return &c
}
func (b *FigureCaption) before(l Listener) { l.BeginFigureCaption(b.params) }
func (b *FigureCaption) after(l Listener)  { l.EndFigureCaption(b.params) }

// Line break
type NewLine struct {
	node
}

const NewLineTag = Tag("NewLine")

func (b *NewLine) Tag() Tag { return NewLineTag }
func (b *NewLine) clone() Block {
	c := *b
	return &c
}
func (b *NewLine) before(l Listener) { l.OnNewLine() }
func (b *NewLine) after(Listener)    {}

// Unexpanded macro call
type Macro struct {
	node

	Name    string
	Content string
	Inline  bool
}

const MacroTag = Tag("Macro")

func (b *Macro) Tag() Tag { return MacroTag }
func (b *Macro) clone() Block {
	c := *b
	return &c
}
func (b *Macro) before(l Listener) { l.OnMacro(b.Name, b.params, b.Content, b.Inline) }
func (b *Macro) after(Listener)    {}

// Word
type Word struct {
	node

	Text string
}

const WordTag = Tag("Word")

func (b *Word) Tag() Tag { return WordTag }
func (b *Word) clone() Block {
	c := *b
	return &c
}
func (b *Word) before(l Listener) { l.OnWord(b.Text) }
func (b *Word) after(Listener)    {}

// Inter-word space
type Space struct {
	node
}

const SpaceTag = Tag("Space")

func (b *Space) Tag() Tag { return SpaceTag }
func (b *Space) clone() Block {
	c := *b
	return &c
}
func (b *Space) before(l Listener) { l.OnSpace() }
func (b *Space) after(Listener)    {}

// Punctuation or other special symbol
type SpecialSymbol struct {
	node

	Symbol rune
}

const SpecialSymbolTag = Tag("SpecialSymbol")

func (b *SpecialSymbol) Tag() Tag { return SpecialSymbolTag }
func (b *SpecialSymbol) clone() Block {
	c := *b
	return &c
}
func (b *SpecialSymbol) before(l Listener) { l.OnSpecialSymbol(b.Symbol) }
func (b *SpecialSymbol) after(Listener)    {}

// Anchor
type ID struct {
	node

	Name string
}

const IDTag = Tag("ID")

func (b *ID) Tag() Tag { return IDTag }
func (b *ID) clone() Block {
	c := *b
	return &c
}
func (b *ID) before(l Listener) { l.OnID(b.Name) }
func (b *ID) after(Listener)    {}

// Horizontal line
type HorizontalLine struct {
	node
}

const HorizontalLineTag = Tag("HorizontalLine")

func (b *HorizontalLine) Tag() Tag { return HorizontalLineTag }
func (b *HorizontalLine) clone() Block {
	c := *b
	return &c
}
func (b *HorizontalLine) before(l Listener) { l.OnHorizontalLine(b.params) }
func (b *HorizontalLine) after(Listener)    {}

// Run of empty lines
type EmptyLines struct {
	node

	Count int
}

const EmptyLinesTag = Tag("EmptyLines")

func (b *EmptyLines) Tag() Tag { return EmptyLinesTag }
func (b *EmptyLines) clone() Block {
	c := *b
	return &c
}
func (b *EmptyLines) before(l Listener) { l.OnEmptyLines(b.Count) }
func (b *EmptyLines) after(Listener)    {}

// Verbatim text
type Verbatim struct {
	node

	Content string
	Inline  bool
}

const VerbatimTag = Tag("Verbatim")

func (b *Verbatim) Tag() Tag { return VerbatimTag }
func (b *Verbatim) clone() Block {
	c := *b
	return &c
}
func (b *Verbatim) before(l Listener) { l.OnVerbatim(b.Content, b.Inline, b.params) }
func (b *Verbatim) after(Listener)    {}

// Raw content in a given syntax
type Raw struct {
	node

	Text   string
	Syntax Syntax
}

const RawTag = Tag("Raw")

func (b *Raw) Tag() Tag { return RawTag }
func (b *Raw) clone() Block {
	c := *b
	return &c
}
func (b *Raw) before(l Listener) { l.OnRawText(b.Text, b.Syntax) }
func (b *Raw) after(Listener)    {}

// Image
type Image struct {
	node

	Reference    ResourceReference
	Freestanding bool
	ID           string
}

const ImageTag = Tag("Image")

func (b *Image) Tag() Tag { return ImageTag }
func (b *Image) clone() Block {
	c := *b
	c.Reference.Params = b.Reference.Params.Clone()
	return &c
}
func (b *Image) before(l Listener) { l.OnImage(b.Reference, b.Freestanding, b.ID, b.params) }
func (b *Image) after(Listener)    {}
