package wiki

// Generator builds a block tree from the events it receives.
//
// Example:
//
//	g := wiki.NewGenerator()
//	doc.Traverse(g)
//	copy := g.Document()
type Generator struct {
	EventFunc

	stack []frame
	roots []Block
}

type frame struct {
	begin    Event
	children []Block
}

func NewGenerator() *Generator {
	g := &Generator{}
	g.EventFunc = g.handle
	return g
}

func (g *Generator) handle(e Event) {
	switch {
	case e.Kind.IsBegin():
		g.stack = append(g.stack, frame{begin: e})
	case e.Kind.IsEnd():
		n := len(g.stack)
		if n == 0 {
			log.Error("end event without begin", "event", e.Kind.String())
			return
		}
		f := g.stack[n-1]
		if f.begin.Kind.Partner() != e.Kind {
			log.Error("mismatched end event", "event", e.Kind.String(), "open", f.begin.Kind.String())
			return
		}
		g.stack = g.stack[:n-1]
		g.add(containerBlock(f.begin, f.children))
	case e.Kind.IsOn():
		g.add(leafBlock(e))
	}
}

func (g *Generator) add(b Block) {
	if n := len(g.stack); n > 0 {
		g.stack[n-1].children = append(g.stack[n-1].children, b)
	} else {
		g.roots = append(g.roots, b)
	}
}

// Blocks returns the top-level blocks built so far.
func (g *Generator) Blocks() []Block { return g.roots }

// Document returns the generated document. Top-level blocks that are not
// a single Document are wrapped in one.
func (g *Generator) Document() *Document {
	if len(g.roots) == 1 {
		if d, ok := g.roots[0].(*Document); ok {
			return d
		}
	}
	return NewBlock(&Document{}, nil, g.roots...)
}

// Reset drops everything built so far.
func (g *Generator) Reset() {
	g.stack, g.roots = nil, nil
}

func containerBlock(e Event, children []Block) Block {
	var b Block
	switch e.Kind {
	case KindBeginDocument:
		b = &Document{Meta: e.Meta}
	case KindBeginGroup:
		b = &Group{}
	case KindBeginFormat:
		b = &FormatBlock{Format: e.Format}
	case KindBeginParagraph:
		b = &Paragraph{}
	case KindBeginList:
		if e.ListType == ListNumbered {
			b = &NumberedList{}
		} else {
			b = &BulletedList{}
		}
	case KindBeginDefinitionList:
		b = &DefinitionList{}
	case KindBeginListItem:
		b = &ListItem{}
	case KindBeginDefinitionTerm:
		b = &DefinitionTerm{}
	case KindBeginDefinitionDescription:
		b = &DefinitionDescription{}
	case KindBeginMacroMarker:
		b = &MacroMarker{Name: e.Name, Content: e.Content, Inline: e.Inline}
	case KindBeginSection:
		b = &Section{}
	case KindBeginHeader:
		b = &Header{Level: e.Level, ID: e.ID}
	case KindBeginQuotation:
		b = &Quotation{}
	case KindBeginQuotationLine:
		b = &QuotationLine{}
	case KindBeginTable:
		b = &Table{}
	case KindBeginTableRow:
		b = &TableRow{}
	case KindBeginTableCell:
		b = &TableCell{}
	case KindBeginTableHeadCell:
		b = &TableHeadCell{}
	case KindBeginLink:
		b = &Link{Reference: e.Reference, Freestanding: e.Freestanding}
	case KindBeginMetaData:
		b = &MetaDataBlock{Meta: e.Meta}
	case KindBeginFigure:
		b = &Figure{}
	case KindBeginFigureCaption:
		b = &FigureCaption{}
	default:
		panic("wiki: not a begin event: " + e.Kind.String())
	}
	return NewBlock(b, e.Params, children...)
}

func leafBlock(e Event) Block {
	var b Block
	switch e.Kind {
	case KindOnNewLine:
		b = &NewLine{}
	case KindOnMacro:
		b = &Macro{Name: e.Name, Content: e.Content, Inline: e.Inline}
	case KindOnWord:
		b = &Word{Text: e.Text}
	case KindOnSpace:
		b = &Space{}
	case KindOnSpecialSymbol:
		b = &SpecialSymbol{Symbol: e.Symbol}
	case KindOnID:
		b = &ID{Name: e.ID}
	case KindOnHorizontalLine:
		b = &HorizontalLine{}
	case KindOnEmptyLines:
		b = &EmptyLines{Count: e.Count}
	case KindOnVerbatim:
		b = &Verbatim{Content: e.Content, Inline: e.Inline}
	case KindOnRawText:
		b = &Raw{Text: e.Text, Syntax: e.Syntax}
	case KindOnImage:
		b = &Image{Reference: e.Reference, Freestanding: e.Freestanding, ID: e.ID}
	default:
		panic("wiki: not a standalone event: " + e.Kind.String())
	}
	return NewBlock(b, e.Params)
}
