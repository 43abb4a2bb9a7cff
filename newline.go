package wiki

// ConsecutiveNewLineListener counts the new lines received in a row. Any
// other event resets the count.
type ConsecutiveNewLineListener struct {
	ChainingListener

	count int
}

var _ ResumableListener = (*ConsecutiveNewLineListener)(nil)

func NewConsecutiveNewLineListener() *ConsecutiveNewLineListener {
	return &ConsecutiveNewLineListener{}
}

func (l *ConsecutiveNewLineListener) NewInstance() Listener {
	return NewConsecutiveNewLineListener()
}

func (l *ConsecutiveNewLineListener) Resume(popped Listener) {
	if p, ok := popped.(*ConsecutiveNewLineListener); ok {
		l.count = p.count
	}
}

// NewLineCount returns the number of new lines received since the last
// other event, including the one being forwarded.
func (l *ConsecutiveNewLineListener) NewLineCount() int { return l.count }

func (l *ConsecutiveNewLineListener) BeginDocument(meta MetaData) {
	l.count = 0
	l.ChainingListener.BeginDocument(meta)
}

func (l *ConsecutiveNewLineListener) EndDocument(meta MetaData) {
	l.count = 0
	l.ChainingListener.EndDocument(meta)
}

func (l *ConsecutiveNewLineListener) BeginGroup(params Params) {
	l.count = 0
	l.ChainingListener.BeginGroup(params)
}

func (l *ConsecutiveNewLineListener) EndGroup(params Params) {
	l.count = 0
	l.ChainingListener.EndGroup(params)
}

func (l *ConsecutiveNewLineListener) BeginFormat(format Format, params Params) {
	l.count = 0
	l.ChainingListener.BeginFormat(format, params)
}

func (l *ConsecutiveNewLineListener) EndFormat(format Format, params Params) {
	l.count = 0
	l.ChainingListener.EndFormat(format, params)
}

func (l *ConsecutiveNewLineListener) BeginParagraph(params Params) {
	l.count = 0
	l.ChainingListener.BeginParagraph(params)
}

func (l *ConsecutiveNewLineListener) EndParagraph(params Params) {
	l.count = 0
	l.ChainingListener.EndParagraph(params)
}

func (l *ConsecutiveNewLineListener) BeginList(typ ListType, params Params) {
	l.count = 0
	l.ChainingListener.BeginList(typ, params)
}

func (l *ConsecutiveNewLineListener) EndList(typ ListType, params Params) {
	l.count = 0
	l.ChainingListener.EndList(typ, params)
}

func (l *ConsecutiveNewLineListener) BeginDefinitionList(params Params) {
	l.count = 0
	l.ChainingListener.BeginDefinitionList(params)
}

func (l *ConsecutiveNewLineListener) EndDefinitionList(params Params) {
	l.count = 0
	l.ChainingListener.EndDefinitionList(params)
}

func (l *ConsecutiveNewLineListener) BeginListItem(params Params) {
	l.count = 0
	l.ForwardBeginListItem(params)
}

func (l *ConsecutiveNewLineListener) EndListItem(params Params) {
	l.count = 0
	l.ForwardEndListItem(params)
}

func (l *ConsecutiveNewLineListener) BeginDefinitionTerm() {
	l.count = 0
	l.ChainingListener.BeginDefinitionTerm()
}

func (l *ConsecutiveNewLineListener) EndDefinitionTerm() {
	l.count = 0
	l.ChainingListener.EndDefinitionTerm()
}

func (l *ConsecutiveNewLineListener) BeginDefinitionDescription() {
	l.count = 0
	l.ChainingListener.BeginDefinitionDescription()
}

func (l *ConsecutiveNewLineListener) EndDefinitionDescription() {
	l.count = 0
	l.ChainingListener.EndDefinitionDescription()
}

func (l *ConsecutiveNewLineListener) BeginMacroMarker(name string, params Params, content string, inline bool) {
	l.count = 0
	l.ChainingListener.BeginMacroMarker(name, params, content, inline)
}

func (l *ConsecutiveNewLineListener) EndMacroMarker(name string, params Params, content string, inline bool) {
	l.count = 0
	l.ChainingListener.EndMacroMarker(name, params, content, inline)
}

func (l *ConsecutiveNewLineListener) BeginSection(params Params) {
	l.count = 0
	l.ChainingListener.BeginSection(params)
}

func (l *ConsecutiveNewLineListener) EndSection(params Params) {
	l.count = 0
	l.ChainingListener.EndSection(params)
}

func (l *ConsecutiveNewLineListener) BeginHeader(level HeaderLevel, id string, params Params) {
	l.count = 0
	l.ChainingListener.BeginHeader(level, id, params)
}

func (l *ConsecutiveNewLineListener) EndHeader(level HeaderLevel, id string, params Params) {
	l.count = 0
	l.ChainingListener.EndHeader(level, id, params)
}

func (l *ConsecutiveNewLineListener) BeginQuotation(params Params) {
	l.count = 0
	l.ChainingListener.BeginQuotation(params)
}

func (l *ConsecutiveNewLineListener) EndQuotation(params Params) {
	l.count = 0
	l.ChainingListener.EndQuotation(params)
}

func (l *ConsecutiveNewLineListener) BeginQuotationLine() {
	l.count = 0
	l.ChainingListener.BeginQuotationLine()
}

func (l *ConsecutiveNewLineListener) EndQuotationLine() {
	l.count = 0
	l.ChainingListener.EndQuotationLine()
}

func (l *ConsecutiveNewLineListener) BeginTable(params Params) {
	l.count = 0
	l.ChainingListener.BeginTable(params)
}

func (l *ConsecutiveNewLineListener) EndTable(params Params) {
	l.count = 0
	l.ChainingListener.EndTable(params)
}

func (l *ConsecutiveNewLineListener) BeginTableRow(params Params) {
	l.count = 0
	l.ChainingListener.BeginTableRow(params)
}

func (l *ConsecutiveNewLineListener) EndTableRow(params Params) {
	l.count = 0
	l.ChainingListener.EndTableRow(params)
}

func (l *ConsecutiveNewLineListener) BeginTableCell(params Params) {
	l.count = 0
	l.ChainingListener.BeginTableCell(params)
}

func (l *ConsecutiveNewLineListener) EndTableCell(params Params) {
	l.count = 0
	l.ChainingListener.EndTableCell(params)
}

func (l *ConsecutiveNewLineListener) BeginTableHeadCell(params Params) {
	l.count = 0
	l.ChainingListener.BeginTableHeadCell(params)
}

func (l *ConsecutiveNewLineListener) EndTableHeadCell(params Params) {
	l.count = 0
	l.ChainingListener.EndTableHeadCell(params)
}

func (l *ConsecutiveNewLineListener) BeginLink(ref ResourceReference, freestanding bool, params Params) {
	l.count = 0
	l.ChainingListener.BeginLink(ref, freestanding, params)
}

func (l *ConsecutiveNewLineListener) EndLink(ref ResourceReference, freestanding bool, params Params) {
	l.count = 0
	l.ChainingListener.EndLink(ref, freestanding, params)
}

func (l *ConsecutiveNewLineListener) BeginMetaData(meta MetaData) {
	l.count = 0
	l.ChainingListener.BeginMetaData(meta)
}

func (l *ConsecutiveNewLineListener) EndMetaData(meta MetaData) {
	l.count = 0
	l.ChainingListener.EndMetaData(meta)
}

func (l *ConsecutiveNewLineListener) BeginFigure(params Params) {
	l.count = 0
	l.ChainingListener.BeginFigure(params)
}

func (l *ConsecutiveNewLineListener) EndFigure(params Params) {
	l.count = 0
	l.ChainingListener.EndFigure(params)
}

func (l *ConsecutiveNewLineListener) BeginFigureCaption(params Params) {
	l.count = 0
	l.ChainingListener.BeginFigureCaption(params)
}

func (l *ConsecutiveNewLineListener) EndFigureCaption(params Params) {
	l.count = 0
	l.ChainingListener.EndFigureCaption(params)
}

func (l *ConsecutiveNewLineListener) OnNewLine() {
	l.count++
	l.ChainingListener.OnNewLine()
}

func (l *ConsecutiveNewLineListener) OnMacro(name string, params Params, content string, inline bool) {
	l.count = 0
	l.ChainingListener.OnMacro(name, params, content, inline)
}

func (l *ConsecutiveNewLineListener) OnWord(word string) {
	l.count = 0
	l.ChainingListener.OnWord(word)
}

func (l *ConsecutiveNewLineListener) OnSpace() {
	l.count = 0
	l.ChainingListener.OnSpace()
}

func (l *ConsecutiveNewLineListener) OnSpecialSymbol(symbol rune) {
	l.count = 0
	l.ChainingListener.OnSpecialSymbol(symbol)
}

func (l *ConsecutiveNewLineListener) OnID(name string) {
	l.count = 0
	l.ChainingListener.OnID(name)
}

func (l *ConsecutiveNewLineListener) OnHorizontalLine(params Params) {
	l.count = 0
	l.ChainingListener.OnHorizontalLine(params)
}

func (l *ConsecutiveNewLineListener) OnEmptyLines(count int) {
	l.count = 0
	l.ChainingListener.OnEmptyLines(count)
}

func (l *ConsecutiveNewLineListener) OnVerbatim(content string, inline bool, params Params) {
	l.count = 0
	l.ChainingListener.OnVerbatim(content, inline, params)
}

func (l *ConsecutiveNewLineListener) OnRawText(text string, syntax Syntax) {
	l.count = 0
	l.ChainingListener.OnRawText(text, syntax)
}

func (l *ConsecutiveNewLineListener) OnImage(ref ResourceReference, freestanding bool, id string, params Params) {
	l.count = 0
	l.ForwardImage(ref, freestanding, id, params)
}
