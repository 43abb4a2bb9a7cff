package wiki

// Listener receives the events of a wiki document in document order.
//
// Producers must emit Begin/End pairs nested like parentheses. Listeners must
// not assume any particular number of events, only that pairs nest.
type Listener interface {
	BeginDocument(meta MetaData)
	EndDocument(meta MetaData)
	BeginGroup(params Params)
	EndGroup(params Params)
	BeginFormat(format Format, params Params)
	EndFormat(format Format, params Params)
	BeginParagraph(params Params)
	EndParagraph(params Params)
	BeginList(typ ListType, params Params)
	EndList(typ ListType, params Params)
	BeginDefinitionList(params Params)
	EndDefinitionList(params Params)
	BeginListItem(params Params)
	EndListItem(params Params)
	BeginDefinitionTerm()
	EndDefinitionTerm()
	BeginDefinitionDescription()
	EndDefinitionDescription()
	BeginMacroMarker(name string, params Params, content string, inline bool)
	EndMacroMarker(name string, params Params, content string, inline bool)
	BeginSection(params Params)
	EndSection(params Params)
	BeginHeader(level HeaderLevel, id string, params Params)
	EndHeader(level HeaderLevel, id string, params Params)
	BeginQuotation(params Params)
	EndQuotation(params Params)
	BeginQuotationLine()
	EndQuotationLine()
	BeginTable(params Params)
	EndTable(params Params)
	BeginTableRow(params Params)
	EndTableRow(params Params)
	BeginTableCell(params Params)
	EndTableCell(params Params)
	BeginTableHeadCell(params Params)
	EndTableHeadCell(params Params)
	BeginLink(ref ResourceReference, freestanding bool, params Params)
	EndLink(ref ResourceReference, freestanding bool, params Params)
	BeginMetaData(meta MetaData)
	EndMetaData(meta MetaData)
	BeginFigure(params Params)
	EndFigure(params Params)
	BeginFigureCaption(params Params)
	EndFigureCaption(params Params)

	OnNewLine()
	OnMacro(name string, params Params, content string, inline bool)
	OnWord(word string)
	OnSpace()
	OnSpecialSymbol(symbol rune)
	OnID(name string)
	OnHorizontalLine(params Params)
	OnEmptyLines(count int)
	OnVerbatim(content string, inline bool, params Params)
	OnRawText(text string, syntax Syntax)
	OnImage(ref ResourceReference, freestanding bool, id string, params Params)
}

// SimpleListItemListener is the parameterless form of the list item events.
// A chaining listener implementing it has these methods called instead of
// forwarding whenever the parameterized form reaches the chaining base.
// The event goes further only if the method calls ForwardSimple (or one of
// the Forward methods with a rewritten event). A listener that overrides
// the parameterized form as well is called once, through that override.
type SimpleListItemListener interface {
	BeginSimpleListItem()
	EndSimpleListItem()
}

// SimpleImageListener is the image event without an identifier. It follows
// the same rules as SimpleListItemListener.
type SimpleImageListener interface {
	OnSimpleImage(ref ResourceReference, freestanding bool, params Params)
}

// NopListener ignores every event. Embed it to implement a subset of
// Listener.
type NopListener struct{}

var _ Listener = NopListener{}

func (NopListener) BeginDocument(MetaData)                          {}
func (NopListener) EndDocument(MetaData)                            {}
func (NopListener) BeginGroup(Params)                               {}
func (NopListener) EndGroup(Params)                                 {}
func (NopListener) BeginFormat(Format, Params)                      {}
func (NopListener) EndFormat(Format, Params)                        {}
func (NopListener) BeginParagraph(Params)                           {}
func (NopListener) EndParagraph(Params)                             {}
func (NopListener) BeginList(ListType, Params)                      {}
func (NopListener) EndList(ListType, Params)                        {}
func (NopListener) BeginDefinitionList(Params)                      {}
func (NopListener) EndDefinitionList(Params)                        {}
func (NopListener) BeginListItem(Params)                            {}
func (NopListener) EndListItem(Params)                              {}
func (NopListener) BeginDefinitionTerm()                            {}
func (NopListener) EndDefinitionTerm()                              {}
func (NopListener) BeginDefinitionDescription()                     {}
func (NopListener) EndDefinitionDescription()                       {}
func (NopListener) BeginMacroMarker(string, Params, string, bool)   {}
func (NopListener) EndMacroMarker(string, Params, string, bool)     {}
func (NopListener) BeginSection(Params)                             {}
func (NopListener) EndSection(Params)                               {}
func (NopListener) BeginHeader(HeaderLevel, string, Params)         {}
func (NopListener) EndHeader(HeaderLevel, string, Params)           {}
func (NopListener) BeginQuotation(Params)                           {}
func (NopListener) EndQuotation(Params)                             {}
func (NopListener) BeginQuotationLine()                             {}
func (NopListener) EndQuotationLine()                               {}
func (NopListener) BeginTable(Params)                               {}
func (NopListener) EndTable(Params)                                 {}
func (NopListener) BeginTableRow(Params)                            {}
func (NopListener) EndTableRow(Params)                              {}
func (NopListener) BeginTableCell(Params)                           {}
func (NopListener) EndTableCell(Params)                             {}
func (NopListener) BeginTableHeadCell(Params)                       {}
func (NopListener) EndTableHeadCell(Params)                         {}
func (NopListener) BeginLink(ResourceReference, bool, Params)       {}
func (NopListener) EndLink(ResourceReference, bool, Params)         {}
func (NopListener) BeginMetaData(MetaData)                          {}
func (NopListener) EndMetaData(MetaData)                            {}
func (NopListener) BeginFigure(Params)                              {}
func (NopListener) EndFigure(Params)                                {}
func (NopListener) BeginFigureCaption(Params)                       {}
func (NopListener) EndFigureCaption(Params)                         {}
func (NopListener) OnNewLine()                                      {}
func (NopListener) OnMacro(string, Params, string, bool)            {}
func (NopListener) OnWord(string)                                   {}
func (NopListener) OnSpace()                                        {}
func (NopListener) OnSpecialSymbol(rune)                            {}
func (NopListener) OnID(string)                                     {}
func (NopListener) OnHorizontalLine(Params)                         {}
func (NopListener) OnEmptyLines(int)                                {}
func (NopListener) OnVerbatim(string, bool, Params)                 {}
func (NopListener) OnRawText(string, Syntax)                        {}
func (NopListener) OnImage(ResourceReference, bool, string, Params) {}

// EventFunc turns every listener call into an Event and hands it to the
// function.
type EventFunc func(Event)

var _ Listener = EventFunc(nil)

func (f EventFunc) BeginDocument(meta MetaData) {
	f(Event{Kind: KindBeginDocument, Meta: meta})
}

func (f EventFunc) EndDocument(meta MetaData) {
	f(Event{Kind: KindEndDocument, Meta: meta})
}

func (f EventFunc) BeginGroup(params Params) {
	f(Event{Kind: KindBeginGroup, Params: params})
}

func (f EventFunc) EndGroup(params Params) {
	f(Event{Kind: KindEndGroup, Params: params})
}

func (f EventFunc) BeginFormat(format Format, params Params) {
	f(Event{Kind: KindBeginFormat, Format: format, Params: params})
}

func (f EventFunc) EndFormat(format Format, params Params) {
	f(Event{Kind: KindEndFormat, Format: format, Params: params})
}

func (f EventFunc) BeginParagraph(params Params) {
	f(Event{Kind: KindBeginParagraph, Params: params})
}

func (f EventFunc) EndParagraph(params Params) {
	f(Event{Kind: KindEndParagraph, Params: params})
}

func (f EventFunc) BeginList(typ ListType, params Params) {
	f(Event{Kind: KindBeginList, ListType: typ, Params: params})
}

func (f EventFunc) EndList(typ ListType, params Params) {
	f(Event{Kind: KindEndList, ListType: typ, Params: params})
}

func (f EventFunc) BeginDefinitionList(params Params) {
	f(Event{Kind: KindBeginDefinitionList, Params: params})
}

func (f EventFunc) EndDefinitionList(params Params) {
	f(Event{Kind: KindEndDefinitionList, Params: params})
}

func (f EventFunc) BeginListItem(params Params) {
	f(Event{Kind: KindBeginListItem, Params: params})
}

func (f EventFunc) EndListItem(params Params) {
	f(Event{Kind: KindEndListItem, Params: params})
}

func (f EventFunc) BeginDefinitionTerm() {
	f(Event{Kind: KindBeginDefinitionTerm})
}

func (f EventFunc) EndDefinitionTerm() {
	f(Event{Kind: KindEndDefinitionTerm})
}

func (f EventFunc) BeginDefinitionDescription() {
	f(Event{Kind: KindBeginDefinitionDescription})
}

func (f EventFunc) EndDefinitionDescription() {
	f(Event{Kind: KindEndDefinitionDescription})
}

func (f EventFunc) BeginMacroMarker(name string, params Params, content string, inline bool) {
	f(Event{Kind: KindBeginMacroMarker, Name: name, Params: params, Content: content, Inline: inline})
}

func (f EventFunc) EndMacroMarker(name string, params Params, content string, inline bool) {
	f(Event{Kind: KindEndMacroMarker, Name: name, Params: params, Content: content, Inline: inline})
}

func (f EventFunc) BeginSection(params Params) {
	f(Event{Kind: KindBeginSection, Params: params})
}

func (f EventFunc) EndSection(params Params) {
	f(Event{Kind: KindEndSection, Params: params})
}

func (f EventFunc) BeginHeader(level HeaderLevel, id string, params Params) {
	f(Event{Kind: KindBeginHeader, Level: level, ID: id, Params: params})
}

func (f EventFunc) EndHeader(level HeaderLevel, id string, params Params) {
	f(Event{Kind: KindEndHeader, Level: level, ID: id, Params: params})
}

func (f EventFunc) BeginQuotation(params Params) {
	f(Event{Kind: KindBeginQuotation, Params: params})
}

func (f EventFunc) EndQuotation(params Params) {
	f(Event{Kind: KindEndQuotation, Params: params})
}

func (f EventFunc) BeginQuotationLine() {
	f(Event{Kind: KindBeginQuotationLine})
}

func (f EventFunc) EndQuotationLine() {
	f(Event{Kind: KindEndQuotationLine})
}

func (f EventFunc) BeginTable(params Params) {
	f(Event{Kind: KindBeginTable, Params: params})
}

func (f EventFunc) EndTable(params Params) {
	f(Event{Kind: KindEndTable, Params: params})
}

func (f EventFunc) BeginTableRow(params Params) {
	f(Event{Kind: KindBeginTableRow, Params: params})
}

func (f EventFunc) EndTableRow(params Params) {
	f(Event{Kind: KindEndTableRow, Params: params})
}

func (f EventFunc) BeginTableCell(params Params) {
	f(Event{Kind: KindBeginTableCell, Params: params})
}

func (f EventFunc) EndTableCell(params Params) {
	f(Event{Kind: KindEndTableCell, Params: params})
}

func (f EventFunc) BeginTableHeadCell(params Params) {
	f(Event{Kind: KindBeginTableHeadCell, Params: params})
}

func (f EventFunc) EndTableHeadCell(params Params) {
	f(Event{Kind: KindEndTableHeadCell, Params: params})
}

func (f EventFunc) BeginLink(ref ResourceReference, freestanding bool, params Params) {
	f(Event{Kind: KindBeginLink, Reference: ref, Freestanding: freestanding, Params: params})
}

func (f EventFunc) EndLink(ref ResourceReference, freestanding bool, params Params) {
	f(Event{Kind: KindEndLink, Reference: ref, Freestanding: freestanding, Params: params})
}

func (f EventFunc) BeginMetaData(meta MetaData) {
	f(Event{Kind: KindBeginMetaData, Meta: meta})
}

func (f EventFunc) EndMetaData(meta MetaData) {
	f(Event{Kind: KindEndMetaData, Meta: meta})
}

func (f EventFunc) BeginFigure(params Params) {
	f(Event{Kind: KindBeginFigure, Params: params})
}

func (f EventFunc) EndFigure(params Params) {
	f(Event{Kind: KindEndFigure, Params: params})
}

func (f EventFunc) BeginFigureCaption(params Params) {
	f(Event{Kind: KindBeginFigureCaption, Params: params})
}

func (f EventFunc) EndFigureCaption(params Params) {
	f(Event{Kind: KindEndFigureCaption, Params: params})
}

func (f EventFunc) OnNewLine() {
	f(Event{Kind: KindOnNewLine})
}

func (f EventFunc) OnMacro(name string, params Params, content string, inline bool) {
	f(Event{Kind: KindOnMacro, Name: name, Params: params, Content: content, Inline: inline})
}

func (f EventFunc) OnWord(word string) {
	f(Event{Kind: KindOnWord, Text: word})
}

func (f EventFunc) OnSpace() {
	f(Event{Kind: KindOnSpace})
}

func (f EventFunc) OnSpecialSymbol(symbol rune) {
	f(Event{Kind: KindOnSpecialSymbol, Symbol: symbol})
}

func (f EventFunc) OnID(name string) {
	f(Event{Kind: KindOnID, ID: name})
}

func (f EventFunc) OnHorizontalLine(params Params) {
	f(Event{Kind: KindOnHorizontalLine, Params: params})
}

func (f EventFunc) OnEmptyLines(count int) {
	f(Event{Kind: KindOnEmptyLines, Count: count})
}

func (f EventFunc) OnVerbatim(content string, inline bool, params Params) {
	f(Event{Kind: KindOnVerbatim, Content: content, Inline: inline, Params: params})
}

func (f EventFunc) OnRawText(text string, syntax Syntax) {
	f(Event{Kind: KindOnRawText, Text: text, Syntax: syntax})
}

func (f EventFunc) OnImage(ref ResourceReference, freestanding bool, id string, params Params) {
	f(Event{Kind: KindOnImage, Reference: ref, Freestanding: freestanding, ID: id, Params: params})
}
