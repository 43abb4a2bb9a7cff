package wiki

// BlockStateListener tracks where in the document the current event is:
// nesting depths of inline constructs, item indices of the innermost lists,
// table cell coordinates and the enclosing and previous events.
//
// State is updated before a begin event is forwarded and after an end
// event is forwarded, so listeners further down the chain see the scope
// they are in.
type BlockStateListener struct {
	ChainingListener

	previous EventKind
	events   []EventKind

	inlineDepth        int
	paragraphDepth     int
	headerDepth        int
	sectionDepth       int
	linkDepth          int
	macroDepth         int
	quotationLineDepth int
	figureDepth        int
	figureCaptionDepth int

	lists           []int // item index per open list
	definitionLists []int
	quotations      []int // line index per open quotation
	tables          []cell
}

type cell struct {
	row, col int
}

var _ ResumableListener = (*BlockStateListener)(nil)

func NewBlockStateListener() *BlockStateListener {
	return &BlockStateListener{}
}

func (l *BlockStateListener) NewInstance() Listener {
	return NewBlockStateListener()
}

// Resume takes the previous event from the popped instance.
func (l *BlockStateListener) Resume(popped Listener) {
	if p, ok := popped.(*BlockStateListener); ok && p.previous != KindNone {
		l.previous = p.previous
	}
}

// PreviousEvent returns the kind of the last completed event: an end kind
// for containers, an on kind for standalone events.
func (l *BlockStateListener) PreviousEvent() EventKind { return l.previous }

// CurrentEvent returns the begin kind of the innermost open container, or
// KindNone.
func (l *BlockStateListener) CurrentEvent() EventKind {
	if n := len(l.events); n > 0 {
		return l.events[n-1]
	}
	return KindNone
}

// ParentEvent returns the begin kind of the container enclosing the current
// one, or KindNone.
func (l *BlockStateListener) ParentEvent() EventKind {
	if n := len(l.events); n > 1 {
		return l.events[n-2]
	}
	return KindNone
}

func (l *BlockStateListener) InlineDepth() int        { return l.inlineDepth }
func (l *BlockStateListener) IsInLine() bool          { return l.inlineDepth > 0 }
func (l *BlockStateListener) IsInParagraph() bool     { return l.paragraphDepth > 0 }
func (l *BlockStateListener) IsInHeader() bool        { return l.headerDepth > 0 }
func (l *BlockStateListener) SectionDepth() int       { return l.sectionDepth }
func (l *BlockStateListener) IsInLink() bool          { return l.linkDepth > 0 }
func (l *BlockStateListener) LinkDepth() int          { return l.linkDepth }
func (l *BlockStateListener) IsInMacro() bool         { return l.macroDepth > 0 }
func (l *BlockStateListener) MacroDepth() int         { return l.macroDepth }
func (l *BlockStateListener) IsInFigure() bool        { return l.figureDepth > 0 }
func (l *BlockStateListener) IsInFigureCaption() bool { return l.figureCaptionDepth > 0 }

func (l *BlockStateListener) ListDepth() int { return len(l.lists) }
func (l *BlockStateListener) IsInList() bool { return len(l.lists) > 0 }

// ListItemIndex returns the zero-based index of the current item of the
// innermost list, or -1 outside of lists and before the first item.
func (l *BlockStateListener) ListItemIndex() int { return top(l.lists) }

func (l *BlockStateListener) DefinitionListDepth() int { return len(l.definitionLists) }
func (l *BlockStateListener) IsInDefinitionList() bool { return len(l.definitionLists) > 0 }

// DefinitionListItemIndex counts terms and descriptions of the innermost
// definition list, starting at 0.
func (l *BlockStateListener) DefinitionListItemIndex() int { return top(l.definitionLists) }

func (l *BlockStateListener) QuotationDepth() int     { return len(l.quotations) }
func (l *BlockStateListener) IsInQuotation() bool     { return len(l.quotations) > 0 }
func (l *BlockStateListener) IsInQuotationLine() bool { return l.quotationLineDepth > 0 }
func (l *BlockStateListener) QuotationLineIndex() int { return top(l.quotations) }

func (l *BlockStateListener) IsInTable() bool     { return len(l.tables) > 0 }
func (l *BlockStateListener) IsInTableCell() bool { return l.IsInTable() && l.CellCol() >= 0 }

// CellRow returns the zero-based row of the innermost table, or -1.
func (l *BlockStateListener) CellRow() int {
	if t := l.table(); t != nil {
		return t.row
	}
	return -1
}

// CellCol returns the zero-based column within the current row, or -1.
func (l *BlockStateListener) CellCol() int {
	if t := l.table(); t != nil {
		return t.col
	}
	return -1
}

func (l *BlockStateListener) table() *cell {
	if n := len(l.tables); n > 0 {
		return &l.tables[n-1]
	}
	return nil
}

func (l *BlockStateListener) nextCell() {
	if t := l.table(); t != nil {
		t.col++
	}
}

func (l *BlockStateListener) begin(kind EventKind) {
	l.events = append(l.events, kind)
}

func (l *BlockStateListener) end(kind EventKind) {
	l.events = pop(l.events)
	l.previous = kind
}

func top(s []int) int {
	if n := len(s); n > 0 {
		return s[n-1]
	}
	return -1
}

func incTop(s []int) {
	if n := len(s); n > 0 {
		s[n-1]++
	}
}

func pop[T any](s []T) []T {
	if n := len(s); n > 0 {
		return s[:n-1]
	}
	return s
}

func dec(n *int) {
	if *n > 0 {
		*n--
	}
}

func (l *BlockStateListener) BeginDocument(meta MetaData) {
	l.begin(KindBeginDocument)
	l.ChainingListener.BeginDocument(meta)
}

func (l *BlockStateListener) EndDocument(meta MetaData) {
	l.ChainingListener.EndDocument(meta)
	l.end(KindEndDocument)
}

func (l *BlockStateListener) BeginGroup(params Params) {
	l.begin(KindBeginGroup)
	l.ChainingListener.BeginGroup(params)
}

func (l *BlockStateListener) EndGroup(params Params) {
	l.ChainingListener.EndGroup(params)
	l.end(KindEndGroup)
}

func (l *BlockStateListener) BeginFormat(format Format, params Params) {
	l.begin(KindBeginFormat)
	l.ChainingListener.BeginFormat(format, params)
}

func (l *BlockStateListener) EndFormat(format Format, params Params) {
	l.ChainingListener.EndFormat(format, params)
	l.end(KindEndFormat)
}

func (l *BlockStateListener) BeginParagraph(params Params) {
	l.begin(KindBeginParagraph)
	l.paragraphDepth++
	l.inlineDepth++
	l.ChainingListener.BeginParagraph(params)
}

func (l *BlockStateListener) EndParagraph(params Params) {
	l.ChainingListener.EndParagraph(params)
	dec(&l.paragraphDepth)
	dec(&l.inlineDepth)
	l.end(KindEndParagraph)
}

func (l *BlockStateListener) BeginList(typ ListType, params Params) {
	l.begin(KindBeginList)
	l.lists = append(l.lists, -1)
	l.ChainingListener.BeginList(typ, params)
}

func (l *BlockStateListener) EndList(typ ListType, params Params) {
	l.ChainingListener.EndList(typ, params)
	l.lists = pop(l.lists)
	l.end(KindEndList)
}

func (l *BlockStateListener) BeginDefinitionList(params Params) {
	l.begin(KindBeginDefinitionList)
	l.definitionLists = append(l.definitionLists, -1)
	l.ChainingListener.BeginDefinitionList(params)
}

func (l *BlockStateListener) EndDefinitionList(params Params) {
	l.ChainingListener.EndDefinitionList(params)
	l.definitionLists = pop(l.definitionLists)
	l.end(KindEndDefinitionList)
}

func (l *BlockStateListener) BeginListItem(params Params) {
	l.begin(KindBeginListItem)
	incTop(l.lists)
	l.inlineDepth++
	l.ForwardBeginListItem(params)
}

func (l *BlockStateListener) EndListItem(params Params) {
	l.ForwardEndListItem(params)
	dec(&l.inlineDepth)
	l.end(KindEndListItem)
}

func (l *BlockStateListener) BeginDefinitionTerm() {
	l.begin(KindBeginDefinitionTerm)
	incTop(l.definitionLists)
	l.inlineDepth++
	l.ChainingListener.BeginDefinitionTerm()
}

func (l *BlockStateListener) EndDefinitionTerm() {
	l.ChainingListener.EndDefinitionTerm()
	dec(&l.inlineDepth)
	l.end(KindEndDefinitionTerm)
}

func (l *BlockStateListener) BeginDefinitionDescription() {
	l.begin(KindBeginDefinitionDescription)
	incTop(l.definitionLists)
	l.inlineDepth++
	l.ChainingListener.BeginDefinitionDescription()
}

func (l *BlockStateListener) EndDefinitionDescription() {
	l.ChainingListener.EndDefinitionDescription()
	dec(&l.inlineDepth)
	l.end(KindEndDefinitionDescription)
}

func (l *BlockStateListener) BeginMacroMarker(name string, params Params, content string, inline bool) {
	l.begin(KindBeginMacroMarker)
	l.macroDepth++
	if inline {
		l.inlineDepth++
	}
	l.ChainingListener.BeginMacroMarker(name, params, content, inline)
}

func (l *BlockStateListener) EndMacroMarker(name string, params Params, content string, inline bool) {
	l.ChainingListener.EndMacroMarker(name, params, content, inline)
	dec(&l.macroDepth)
	if inline {
		dec(&l.inlineDepth)
	}
	l.end(KindEndMacroMarker)
}

func (l *BlockStateListener) BeginSection(params Params) {
	l.begin(KindBeginSection)
	l.sectionDepth++
	l.ChainingListener.BeginSection(params)
}

func (l *BlockStateListener) EndSection(params Params) {
	l.ChainingListener.EndSection(params)
	dec(&l.sectionDepth)
	l.end(KindEndSection)
}

func (l *BlockStateListener) BeginHeader(level HeaderLevel, id string, params Params) {
	l.begin(KindBeginHeader)
	l.headerDepth++
	l.inlineDepth++
	l.ChainingListener.BeginHeader(level, id, params)
}

func (l *BlockStateListener) EndHeader(level HeaderLevel, id string, params Params) {
	l.ChainingListener.EndHeader(level, id, params)
	dec(&l.headerDepth)
	dec(&l.inlineDepth)
	l.end(KindEndHeader)
}

func (l *BlockStateListener) BeginQuotation(params Params) {
	l.begin(KindBeginQuotation)
	l.quotations = append(l.quotations, -1)
	l.ChainingListener.BeginQuotation(params)
}

func (l *BlockStateListener) EndQuotation(params Params) {
	l.ChainingListener.EndQuotation(params)
	l.quotations = pop(l.quotations)
	l.end(KindEndQuotation)
}

func (l *BlockStateListener) BeginQuotationLine() {
	l.begin(KindBeginQuotationLine)
	incTop(l.quotations)
	l.quotationLineDepth++
	l.inlineDepth++
	l.ChainingListener.BeginQuotationLine()
}

func (l *BlockStateListener) EndQuotationLine() {
	l.ChainingListener.EndQuotationLine()
	dec(&l.quotationLineDepth)
	dec(&l.inlineDepth)
	l.end(KindEndQuotationLine)
}

func (l *BlockStateListener) BeginTable(params Params) {
	l.begin(KindBeginTable)
	l.tables = append(l.tables, cell{-1, -1})
	l.ChainingListener.BeginTable(params)
}

func (l *BlockStateListener) EndTable(params Params) {
	l.ChainingListener.EndTable(params)
	l.tables = pop(l.tables)
	l.end(KindEndTable)
}

func (l *BlockStateListener) BeginTableRow(params Params) {
	l.begin(KindBeginTableRow)
	if t := l.table(); t != nil {
		t.row++
		t.col = -1
	}
	l.ChainingListener.BeginTableRow(params)
}

func (l *BlockStateListener) EndTableRow(params Params) {
	l.ChainingListener.EndTableRow(params)
	if t := l.table(); t != nil {
		t.col = -1
	}
	l.end(KindEndTableRow)
}

func (l *BlockStateListener) BeginTableCell(params Params) {
	l.begin(KindBeginTableCell)
	l.nextCell()
	l.inlineDepth++
	l.ChainingListener.BeginTableCell(params)
}

func (l *BlockStateListener) EndTableCell(params Params) {
	l.ChainingListener.EndTableCell(params)
	dec(&l.inlineDepth)
	l.end(KindEndTableCell)
}

func (l *BlockStateListener) BeginTableHeadCell(params Params) {
	l.begin(KindBeginTableHeadCell)
	l.nextCell()
	l.inlineDepth++
	l.ChainingListener.BeginTableHeadCell(params)
}

func (l *BlockStateListener) EndTableHeadCell(params Params) {
	l.ChainingListener.EndTableHeadCell(params)
	dec(&l.inlineDepth)
	l.end(KindEndTableHeadCell)
}

func (l *BlockStateListener) BeginLink(ref ResourceReference, freestanding bool, params Params) {
	l.begin(KindBeginLink)
	l.linkDepth++
	l.inlineDepth++
	l.ChainingListener.BeginLink(ref, freestanding, params)
}

func (l *BlockStateListener) EndLink(ref ResourceReference, freestanding bool, params Params) {
	l.ChainingListener.EndLink(ref, freestanding, params)
	dec(&l.linkDepth)
	dec(&l.inlineDepth)
	l.end(KindEndLink)
}

func (l *BlockStateListener) BeginMetaData(meta MetaData) {
	l.begin(KindBeginMetaData)
	l.ChainingListener.BeginMetaData(meta)
}

func (l *BlockStateListener) EndMetaData(meta MetaData) {
	l.ChainingListener.EndMetaData(meta)
	l.end(KindEndMetaData)
}

func (l *BlockStateListener) BeginFigure(params Params) {
	l.begin(KindBeginFigure)
	l.figureDepth++
	l.ChainingListener.BeginFigure(params)
}

func (l *BlockStateListener) EndFigure(params Params) {
	l.ChainingListener.EndFigure(params)
	dec(&l.figureDepth)
	l.end(KindEndFigure)
}

func (l *BlockStateListener) BeginFigureCaption(params Params) {
	l.begin(KindBeginFigureCaption)
	l.figureCaptionDepth++
	l.ChainingListener.BeginFigureCaption(params)
}

func (l *BlockStateListener) EndFigureCaption(params Params) {
	l.ChainingListener.EndFigureCaption(params)
	dec(&l.figureCaptionDepth)
	l.end(KindEndFigureCaption)
}

func (l *BlockStateListener) OnNewLine() {
	l.ChainingListener.OnNewLine()
	l.previous = KindOnNewLine
}

func (l *BlockStateListener) OnMacro(name string, params Params, content string, inline bool) {
	l.ChainingListener.OnMacro(name, params, content, inline)
	l.previous = KindOnMacro
}

func (l *BlockStateListener) OnWord(word string) {
	l.ChainingListener.OnWord(word)
	l.previous = KindOnWord
}

func (l *BlockStateListener) OnSpace() {
	l.ChainingListener.OnSpace()
	l.previous = KindOnSpace
}

func (l *BlockStateListener) OnSpecialSymbol(symbol rune) {
	l.ChainingListener.OnSpecialSymbol(symbol)
	l.previous = KindOnSpecialSymbol
}

func (l *BlockStateListener) OnID(name string) {
	l.ChainingListener.OnID(name)
	l.previous = KindOnID
}

func (l *BlockStateListener) OnHorizontalLine(params Params) {
	l.ChainingListener.OnHorizontalLine(params)
	l.previous = KindOnHorizontalLine
}

func (l *BlockStateListener) OnEmptyLines(count int) {
	l.ChainingListener.OnEmptyLines(count)
	l.previous = KindOnEmptyLines
}

func (l *BlockStateListener) OnVerbatim(content string, inline bool, params Params) {
	l.ChainingListener.OnVerbatim(content, inline, params)
	l.previous = KindOnVerbatim
}

func (l *BlockStateListener) OnRawText(text string, syntax Syntax) {
	l.ChainingListener.OnRawText(text, syntax)
	l.previous = KindOnRawText
}

func (l *BlockStateListener) OnImage(ref ResourceReference, freestanding bool, id string, params Params) {
	l.ForwardImage(ref, freestanding, id, params)
	l.previous = KindOnImage
}
