package wiki

import (
	"strconv"
	"strings"
)

// EventKind discriminates the fixed event vocabulary.
type EventKind int

const (
	KindNone EventKind = iota

	KindBeginDocument
	KindEndDocument
	KindBeginGroup
	KindEndGroup
	KindBeginFormat
	KindEndFormat
	KindBeginParagraph
	KindEndParagraph
	KindBeginList
	KindEndList
	KindBeginDefinitionList
	KindEndDefinitionList
	KindBeginListItem
	KindEndListItem
	KindBeginDefinitionTerm
	KindEndDefinitionTerm
	KindBeginDefinitionDescription
	KindEndDefinitionDescription
	KindBeginMacroMarker
	KindEndMacroMarker
	KindBeginSection
	KindEndSection
	KindBeginHeader
	KindEndHeader
	KindBeginQuotation
	KindEndQuotation
	KindBeginQuotationLine
	KindEndQuotationLine
	KindBeginTable
	KindEndTable
	KindBeginTableRow
	KindEndTableRow
	KindBeginTableCell
	KindEndTableCell
	KindBeginTableHeadCell
	KindEndTableHeadCell
	KindBeginLink
	KindEndLink
	KindBeginMetaData
	KindEndMetaData
	KindBeginFigure
	KindEndFigure
	KindBeginFigureCaption
	KindEndFigureCaption

	KindOnNewLine
	KindOnMacro
	KindOnWord
	KindOnSpace
	KindOnSpecialSymbol
	KindOnID
	KindOnHorizontalLine
	KindOnEmptyLines
	KindOnVerbatim
	KindOnRawText
	KindOnImage

	kindCount
)

// Field is a bit set naming the parameter slots an event kind carries.
type Field uint32

const (
	FieldParams Field = 1 << iota
	FieldMeta
	FieldLevel
	FieldListType
	FieldFormat
	FieldID
	FieldName
	FieldContent
	FieldText
	FieldInline
	FieldFreestanding
	FieldReference
	FieldSyntax
	FieldCount
	FieldSymbol
)

type kindClass uint8

const (
	classNone kindClass = iota
	classBegin
	classEnd
	classOn
)

type kindInfo struct {
	name   string
	class  kindClass
	fields Field
}

const (
	macroFields = FieldName | FieldParams | FieldContent | FieldInline
	linkFields  = FieldReference | FieldFreestanding | FieldParams
)

var kinds = [kindCount]kindInfo{
	KindNone: {"None", classNone, 0},

	KindBeginDocument:              {"BeginDocument", classBegin, FieldMeta},
	KindEndDocument:                {"EndDocument", classEnd, FieldMeta},
	KindBeginGroup:                 {"BeginGroup", classBegin, FieldParams},
	KindEndGroup:                   {"EndGroup", classEnd, FieldParams},
	KindBeginFormat:                {"BeginFormat", classBegin, FieldFormat | FieldParams},
	KindEndFormat:                  {"EndFormat", classEnd, FieldFormat | FieldParams},
	KindBeginParagraph:             {"BeginParagraph", classBegin, FieldParams},
	KindEndParagraph:               {"EndParagraph", classEnd, FieldParams},
	KindBeginList:                  {"BeginList", classBegin, FieldListType | FieldParams},
	KindEndList:                    {"EndList", classEnd, FieldListType | FieldParams},
	KindBeginDefinitionList:        {"BeginDefinitionList", classBegin, FieldParams},
	KindEndDefinitionList:          {"EndDefinitionList", classEnd, FieldParams},
	KindBeginListItem:              {"BeginListItem", classBegin, FieldParams},
	KindEndListItem:                {"EndListItem", classEnd, FieldParams},
	KindBeginDefinitionTerm:        {"BeginDefinitionTerm", classBegin, 0},
	KindEndDefinitionTerm:          {"EndDefinitionTerm", classEnd, 0},
	KindBeginDefinitionDescription: {"BeginDefinitionDescription", classBegin, 0},
	KindEndDefinitionDescription:   {"EndDefinitionDescription", classEnd, 0},
	KindBeginMacroMarker:           {"BeginMacroMarker", classBegin, macroFields},
	KindEndMacroMarker:             {"EndMacroMarker", classEnd, macroFields},
	KindBeginSection:               {"BeginSection", classBegin, FieldParams},
	KindEndSection:                 {"EndSection", classEnd, FieldParams},
	KindBeginHeader:                {"BeginHeader", classBegin, FieldLevel | FieldID | FieldParams},
	KindEndHeader:                  {"EndHeader", classEnd, FieldLevel | FieldID | FieldParams},
	KindBeginQuotation:             {"BeginQuotation", classBegin, FieldParams},
	KindEndQuotation:               {"EndQuotation", classEnd, FieldParams},
	KindBeginQuotationLine:         {"BeginQuotationLine", classBegin, 0},
	KindEndQuotationLine:           {"EndQuotationLine", classEnd, 0},
	KindBeginTable:                 {"BeginTable", classBegin, FieldParams},
	KindEndTable:                   {"EndTable", classEnd, FieldParams},
	KindBeginTableRow:              {"BeginTableRow", classBegin, FieldParams},
	KindEndTableRow:                {"EndTableRow", classEnd, FieldParams},
	KindBeginTableCell:             {"BeginTableCell", classBegin, FieldParams},
	KindEndTableCell:               {"EndTableCell", classEnd, FieldParams},
	KindBeginTableHeadCell:         {"BeginTableHeadCell", classBegin, FieldParams},
	KindEndTableHeadCell:           {"EndTableHeadCell", classEnd, FieldParams},
	KindBeginLink:                  {"BeginLink", classBegin, linkFields},
	KindEndLink:                    {"EndLink", classEnd, linkFields},
	KindBeginMetaData:              {"BeginMetaData", classBegin, FieldMeta},
	KindEndMetaData:                {"EndMetaData", classEnd, FieldMeta},
	KindBeginFigure:                {"BeginFigure", classBegin, FieldParams},
	KindEndFigure:                  {"EndFigure", classEnd, FieldParams},
	KindBeginFigureCaption:         {"BeginFigureCaption", classBegin, FieldParams},
	KindEndFigureCaption:           {"EndFigureCaption", classEnd, FieldParams},

	KindOnNewLine:        {"OnNewLine", classOn, 0},
	KindOnMacro:          {"OnMacro", classOn, macroFields},
	KindOnWord:           {"OnWord", classOn, FieldText},
	KindOnSpace:          {"OnSpace", classOn, 0},
	KindOnSpecialSymbol:  {"OnSpecialSymbol", classOn, FieldSymbol},
	KindOnID:             {"OnID", classOn, FieldID},
	KindOnHorizontalLine: {"OnHorizontalLine", classOn, FieldParams},
	KindOnEmptyLines:     {"OnEmptyLines", classOn, FieldCount},
	KindOnVerbatim:       {"OnVerbatim", classOn, FieldContent | FieldInline | FieldParams},
	KindOnRawText:        {"OnRawText", classOn, FieldText | FieldSyntax},
	KindOnImage:          {"OnImage", classOn, FieldReference | FieldFreestanding | FieldID | FieldParams},
}

var kindsByName = func() map[string]EventKind {
	m := make(map[string]EventKind, kindCount)
	for k := KindNone + 1; k < kindCount; k++ {
		m[kinds[k].name] = k
	}
	return m
}()

func (k EventKind) valid() bool { return k > KindNone && k < kindCount }

func (k EventKind) String() string {
	if k >= KindNone && k < kindCount {
		return kinds[k].name
	}
	return "EventKind(" + strconv.Itoa(int(k)) + ")"
}

// IsBegin reports whether the kind opens a scope.
func (k EventKind) IsBegin() bool { return k.valid() && kinds[k].class == classBegin }

// IsEnd reports whether the kind closes a scope.
func (k EventKind) IsEnd() bool { return k.valid() && kinds[k].class == classEnd }

// IsOn reports whether the kind is a standalone event.
func (k EventKind) IsOn() bool { return k.valid() && kinds[k].class == classOn }

// Partner returns the matching end kind of a begin kind and vice versa.
// Standalone kinds have no partner.
func (k EventKind) Partner() EventKind {
	switch {
	case k.IsBegin():
		return k + 1
	case k.IsEnd():
		return k - 1
	}
	return KindNone
}

// Fields returns the parameter signature of the kind.
func (k EventKind) Fields() Field {
	if k.valid() {
		return kinds[k].fields
	}
	return 0
}

// ParseEventKind returns the kind with the given name.
func ParseEventKind(name string) (EventKind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Event is one recorded listener call: the kind plus the parameters of its
// signature. Slots outside the signature are zero.
type Event struct {
	Kind         EventKind
	Params       Params
	Meta         MetaData
	Level        HeaderLevel
	ListType     ListType
	Format       Format
	ID           string
	Name         string
	Content      string
	Text         string
	Inline       bool
	Freestanding bool
	Reference    ResourceReference
	Syntax       Syntax
	Count        int
	Symbol       rune
}

func (e Event) String() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	f := e.Kind.Fields()
	arg := func(name, value string) {
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(value)
	}
	if f&FieldLevel != 0 {
		arg("level", strconv.Itoa(int(e.Level)))
	}
	if f&FieldListType != 0 {
		arg("list", e.ListType.String())
	}
	if f&FieldFormat != 0 {
		arg("format", e.Format.String())
	}
	if f&FieldName != 0 {
		arg("name", e.Name)
	}
	if f&FieldID != 0 && e.ID != "" {
		arg("id", e.ID)
	}
	if f&FieldText != 0 {
		arg("text", strconv.Quote(e.Text))
	}
	if f&FieldContent != 0 && e.Content != "" {
		arg("content", strconv.Quote(e.Content))
	}
	if f&FieldReference != 0 {
		arg("ref", e.Reference.String())
	}
	if f&FieldSyntax != 0 {
		arg("syntax", e.Syntax.String())
	}
	if f&FieldCount != 0 {
		arg("count", strconv.Itoa(e.Count))
	}
	if f&FieldSymbol != 0 {
		arg("symbol", strconv.QuoteRune(e.Symbol))
	}
	if f&FieldInline != 0 && e.Inline {
		arg("inline", "true")
	}
	if f&FieldFreestanding != 0 && e.Freestanding {
		arg("freestanding", "true")
	}
	if f&FieldParams != 0 {
		for _, kv := range e.Params {
			arg(kv.Key, strconv.Quote(kv.Value))
		}
	}
	return sb.String()
}

// Send invokes the listener method matching the event kind.
func (e Event) Send(l Listener) {
	switch e.Kind {
	case KindBeginDocument:
		l.BeginDocument(e.Meta)
	case KindEndDocument:
		l.EndDocument(e.Meta)
	case KindBeginGroup:
		l.BeginGroup(e.Params)
	case KindEndGroup:
		l.EndGroup(e.Params)
	case KindBeginFormat:
		l.BeginFormat(e.Format, e.Params)
	case KindEndFormat:
		l.EndFormat(e.Format, e.Params)
	case KindBeginParagraph:
		l.BeginParagraph(e.Params)
	case KindEndParagraph:
		l.EndParagraph(e.Params)
	case KindBeginList:
		l.BeginList(e.ListType, e.Params)
	case KindEndList:
		l.EndList(e.ListType, e.Params)
	case KindBeginDefinitionList:
		l.BeginDefinitionList(e.Params)
	case KindEndDefinitionList:
		l.EndDefinitionList(e.Params)
	case KindBeginListItem:
		l.BeginListItem(e.Params)
	case KindEndListItem:
		l.EndListItem(e.Params)
	case KindBeginDefinitionTerm:
		l.BeginDefinitionTerm()
	case KindEndDefinitionTerm:
		l.EndDefinitionTerm()
	case KindBeginDefinitionDescription:
		l.BeginDefinitionDescription()
	case KindEndDefinitionDescription:
		l.EndDefinitionDescription()
	case KindBeginMacroMarker:
		l.BeginMacroMarker(e.Name, e.Params, e.Content, e.Inline)
	case KindEndMacroMarker:
		l.EndMacroMarker(e.Name, e.Params, e.Content, e.Inline)
	case KindBeginSection:
		l.BeginSection(e.Params)
	case KindEndSection:
		l.EndSection(e.Params)
	case KindBeginHeader:
		l.BeginHeader(e.Level, e.ID, e.Params)
	case KindEndHeader:
		l.EndHeader(e.Level, e.ID, e.Params)
	case KindBeginQuotation:
		l.BeginQuotation(e.Params)
	case KindEndQuotation:
		l.EndQuotation(e.Params)
	case KindBeginQuotationLine:
		l.BeginQuotationLine()
	case KindEndQuotationLine:
		l.EndQuotationLine()
	case KindBeginTable:
		l.BeginTable(e.Params)
	case KindEndTable:
		l.EndTable(e.Params)
	case KindBeginTableRow:
		l.BeginTableRow(e.Params)
	case KindEndTableRow:
		l.EndTableRow(e.Params)
	case KindBeginTableCell:
		l.BeginTableCell(e.Params)
	case KindEndTableCell:
		l.EndTableCell(e.Params)
	case KindBeginTableHeadCell:
		l.BeginTableHeadCell(e.Params)
	case KindEndTableHeadCell:
		l.EndTableHeadCell(e.Params)
	case KindBeginLink:
		l.BeginLink(e.Reference, e.Freestanding, e.Params)
	case KindEndLink:
		l.EndLink(e.Reference, e.Freestanding, e.Params)
	case KindBeginMetaData:
		l.BeginMetaData(e.Meta)
	case KindEndMetaData:
		l.EndMetaData(e.Meta)
	case KindBeginFigure:
		l.BeginFigure(e.Params)
	case KindEndFigure:
		l.EndFigure(e.Params)
	case KindBeginFigureCaption:
		l.BeginFigureCaption(e.Params)
	case KindEndFigureCaption:
		l.EndFigureCaption(e.Params)
	case KindOnNewLine:
		l.OnNewLine()
	case KindOnMacro:
		l.OnMacro(e.Name, e.Params, e.Content, e.Inline)
	case KindOnWord:
		l.OnWord(e.Text)
	case KindOnSpace:
		l.OnSpace()
	case KindOnSpecialSymbol:
		l.OnSpecialSymbol(e.Symbol)
	case KindOnID:
		l.OnID(e.ID)
	case KindOnHorizontalLine:
		l.OnHorizontalLine(e.Params)
	case KindOnEmptyLines:
		l.OnEmptyLines(e.Count)
	case KindOnVerbatim:
		l.OnVerbatim(e.Content, e.Inline, e.Params)
	case KindOnRawText:
		l.OnRawText(e.Text, e.Syntax)
	case KindOnImage:
		l.OnImage(e.Reference, e.Freestanding, e.ID, e.Params)
	}
}
