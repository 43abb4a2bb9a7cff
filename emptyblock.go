package wiki

// EmptyBlockListener tells whether the innermost open container has
// received any content yet. Standalone events mark the current container
// as not empty; so does a non-empty child container once it ends.
type EmptyBlockListener struct {
	ChainingListener

	empty   []bool
	content bool // any content seen
}

var _ ResumableListener = (*EmptyBlockListener)(nil)

func NewEmptyBlockListener() *EmptyBlockListener {
	return &EmptyBlockListener{}
}

func (l *EmptyBlockListener) NewInstance() Listener {
	return NewEmptyBlockListener()
}

// IsCurrentContainerBlockEmpty reports whether the innermost open container
// is still empty. It is meaningful up to and including the container's end
// event. Outside of any container it reports true.
func (l *EmptyBlockListener) IsCurrentContainerBlockEmpty() bool {
	if n := len(l.empty); n > 0 {
		return l.empty[n-1]
	}
	return true
}

func (l *EmptyBlockListener) open() {
	l.empty = append(l.empty, true)
}

func (l *EmptyBlockListener) close() {
	n := len(l.empty)
	if n == 0 {
		return
	}
	wasEmpty := l.empty[n-1]
	l.empty = l.empty[:n-1]
	if !wasEmpty {
		l.markNotEmpty()
	}
}

// Resume marks the current container as not empty if the popped instance
// saw content.
func (l *EmptyBlockListener) Resume(popped Listener) {
	if p, ok := popped.(*EmptyBlockListener); ok && p.content {
		l.markNotEmpty()
	}
}

func (l *EmptyBlockListener) markNotEmpty() {
	l.content = true
	if n := len(l.empty); n > 0 {
		l.empty[n-1] = false
	}
}

func (l *EmptyBlockListener) BeginDocument(meta MetaData) {
	l.open()
	l.ChainingListener.BeginDocument(meta)
}

func (l *EmptyBlockListener) EndDocument(meta MetaData) {
	l.ChainingListener.EndDocument(meta)
	l.close()
}

func (l *EmptyBlockListener) BeginGroup(params Params) {
	l.open()
	l.ChainingListener.BeginGroup(params)
}

func (l *EmptyBlockListener) EndGroup(params Params) {
	l.ChainingListener.EndGroup(params)
	l.close()
}

func (l *EmptyBlockListener) BeginFormat(format Format, params Params) {
	l.open()
	l.ChainingListener.BeginFormat(format, params)
}

func (l *EmptyBlockListener) EndFormat(format Format, params Params) {
	l.ChainingListener.EndFormat(format, params)
	l.close()
}

func (l *EmptyBlockListener) BeginParagraph(params Params) {
	l.open()
	l.ChainingListener.BeginParagraph(params)
}

func (l *EmptyBlockListener) EndParagraph(params Params) {
	l.ChainingListener.EndParagraph(params)
	l.close()
}

func (l *EmptyBlockListener) BeginList(typ ListType, params Params) {
	l.open()
	l.ChainingListener.BeginList(typ, params)
}

func (l *EmptyBlockListener) EndList(typ ListType, params Params) {
	l.ChainingListener.EndList(typ, params)
	l.close()
}

func (l *EmptyBlockListener) BeginDefinitionList(params Params) {
	l.open()
	l.ChainingListener.BeginDefinitionList(params)
}

func (l *EmptyBlockListener) EndDefinitionList(params Params) {
	l.ChainingListener.EndDefinitionList(params)
	l.close()
}

func (l *EmptyBlockListener) BeginListItem(params Params) {
	l.open()
	l.ForwardBeginListItem(params)
}

func (l *EmptyBlockListener) EndListItem(params Params) {
	l.ForwardEndListItem(params)
	l.close()
}

func (l *EmptyBlockListener) BeginDefinitionTerm() {
	l.open()
	l.ChainingListener.BeginDefinitionTerm()
}

func (l *EmptyBlockListener) EndDefinitionTerm() {
	l.ChainingListener.EndDefinitionTerm()
	l.close()
}

func (l *EmptyBlockListener) BeginDefinitionDescription() {
	l.open()
	l.ChainingListener.BeginDefinitionDescription()
}

func (l *EmptyBlockListener) EndDefinitionDescription() {
	l.ChainingListener.EndDefinitionDescription()
	l.close()
}

func (l *EmptyBlockListener) BeginMacroMarker(name string, params Params, content string, inline bool) {
	l.open()
	l.ChainingListener.BeginMacroMarker(name, params, content, inline)
}

func (l *EmptyBlockListener) EndMacroMarker(name string, params Params, content string, inline bool) {
	l.ChainingListener.EndMacroMarker(name, params, content, inline)
	l.close()
}

func (l *EmptyBlockListener) BeginSection(params Params) {
	l.open()
	l.ChainingListener.BeginSection(params)
}

func (l *EmptyBlockListener) EndSection(params Params) {
	l.ChainingListener.EndSection(params)
	l.close()
}

func (l *EmptyBlockListener) BeginHeader(level HeaderLevel, id string, params Params) {
	l.open()
	l.ChainingListener.BeginHeader(level, id, params)
}

func (l *EmptyBlockListener) EndHeader(level HeaderLevel, id string, params Params) {
	l.ChainingListener.EndHeader(level, id, params)
	l.close()
}

func (l *EmptyBlockListener) BeginQuotation(params Params) {
	l.open()
	l.ChainingListener.BeginQuotation(params)
}

func (l *EmptyBlockListener) EndQuotation(params Params) {
	l.ChainingListener.EndQuotation(params)
	l.close()
}

func (l *EmptyBlockListener) BeginQuotationLine() {
	l.open()
	l.ChainingListener.BeginQuotationLine()
}

func (l *EmptyBlockListener) EndQuotationLine() {
	l.ChainingListener.EndQuotationLine()
	l.close()
}

func (l *EmptyBlockListener) BeginTable(params Params) {
	l.open()
	l.ChainingListener.BeginTable(params)
}

func (l *EmptyBlockListener) EndTable(params Params) {
	l.ChainingListener.EndTable(params)
	l.close()
}

func (l *EmptyBlockListener) BeginTableRow(params Params) {
	l.open()
	l.ChainingListener.BeginTableRow(params)
}

func (l *EmptyBlockListener) EndTableRow(params Params) {
	l.ChainingListener.EndTableRow(params)
	l.close()
}

func (l *EmptyBlockListener) BeginTableCell(params Params) {
	l.open()
	l.ChainingListener.BeginTableCell(params)
}

func (l *EmptyBlockListener) EndTableCell(params Params) {
	l.ChainingListener.EndTableCell(params)
	l.close()
}

func (l *EmptyBlockListener) BeginTableHeadCell(params Params) {
	l.open()
	l.ChainingListener.BeginTableHeadCell(params)
}

func (l *EmptyBlockListener) EndTableHeadCell(params Params) {
	l.ChainingListener.EndTableHeadCell(params)
	l.close()
}

func (l *EmptyBlockListener) BeginLink(ref ResourceReference, freestanding bool, params Params) {
	l.open()
	l.ChainingListener.BeginLink(ref, freestanding, params)
}

func (l *EmptyBlockListener) EndLink(ref ResourceReference, freestanding bool, params Params) {
	l.ChainingListener.EndLink(ref, freestanding, params)
	l.close()
}

func (l *EmptyBlockListener) BeginMetaData(meta MetaData) {
	l.open()
	l.ChainingListener.BeginMetaData(meta)
}

func (l *EmptyBlockListener) EndMetaData(meta MetaData) {
	l.ChainingListener.EndMetaData(meta)
	l.close()
}

func (l *EmptyBlockListener) BeginFigure(params Params) {
	l.open()
	l.ChainingListener.BeginFigure(params)
}

func (l *EmptyBlockListener) EndFigure(params Params) {
	l.ChainingListener.EndFigure(params)
	l.close()
}

func (l *EmptyBlockListener) BeginFigureCaption(params Params) {
	l.open()
	l.ChainingListener.BeginFigureCaption(params)
}

func (l *EmptyBlockListener) EndFigureCaption(params Params) {
	l.ChainingListener.EndFigureCaption(params)
	l.close()
}

func (l *EmptyBlockListener) OnNewLine() {
	l.markNotEmpty()
	l.ChainingListener.OnNewLine()
}

func (l *EmptyBlockListener) OnMacro(name string, params Params, content string, inline bool) {
	l.markNotEmpty()
	l.ChainingListener.OnMacro(name, params, content, inline)
}

func (l *EmptyBlockListener) OnWord(word string) {
	l.markNotEmpty()
	l.ChainingListener.OnWord(word)
}

func (l *EmptyBlockListener) OnSpace() {
	l.markNotEmpty()
	l.ChainingListener.OnSpace()
}

func (l *EmptyBlockListener) OnSpecialSymbol(symbol rune) {
	l.markNotEmpty()
	l.ChainingListener.OnSpecialSymbol(symbol)
}

func (l *EmptyBlockListener) OnID(name string) {
	l.markNotEmpty()
	l.ChainingListener.OnID(name)
}

func (l *EmptyBlockListener) OnHorizontalLine(params Params) {
	l.markNotEmpty()
	l.ChainingListener.OnHorizontalLine(params)
}

func (l *EmptyBlockListener) OnEmptyLines(count int) {
	l.markNotEmpty()
	l.ChainingListener.OnEmptyLines(count)
}

func (l *EmptyBlockListener) OnVerbatim(content string, inline bool, params Params) {
	l.markNotEmpty()
	l.ChainingListener.OnVerbatim(content, inline, params)
}

func (l *EmptyBlockListener) OnRawText(text string, syntax Syntax) {
	l.markNotEmpty()
	l.ChainingListener.OnRawText(text, syntax)
}

func (l *EmptyBlockListener) OnImage(ref ResourceReference, freestanding bool, id string, params Params) {
	l.markNotEmpty()
	l.ForwardImage(ref, freestanding, id, params)
}
