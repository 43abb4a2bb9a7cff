package wiki

// ChainView is the read-only part of a chain a chaining listener needs to
// find its successor.
type ChainView interface {
	NextListener(key ChainKey) Listener
}

// ChainingListener is embedded by every listener that takes part in a
// ListenerChain. Each of its methods forwards the event unchanged to the
// listener registered after it. An embedding type overrides the methods it
// cares about and calls the embedded method to keep the event flowing:
//
//	func (l *Counter) OnWord(word string) {
//		l.words++
//		l.ChainingListener.OnWord(word)
//	}
//
// A listener that is not attached to a chain has no successor and drops
// every event after handling it.
type ChainingListener struct {
	view   ChainView
	key    ChainKey
	self   Listener
	routed *Event
}

// Chained is implemented by pointers to types embedding ChainingListener.
type Chained interface {
	Listener
	chaining() *ChainingListener
}

// StackableListener is a chained listener whose state can be reset per
// scope: the chain pushes a fresh instance on entering a scope and pops it
// on exit.
type StackableListener interface {
	Listener
	NewInstance() Listener
}

// ResumableListener is a stackable listener that takes over state from the
// instance popped off above it, so that what happened inside the scope is
// not lost to the enclosing one.
type ResumableListener interface {
	StackableListener
	Resume(popped Listener)
}

func (c *ChainingListener) chaining() *ChainingListener { return c }

func (c *ChainingListener) attach(view ChainView, key ChainKey, self Listener) {
	c.view, c.key, c.self = view, key, self
}

// LinkTo attaches l to a fixed successor, outside of any ListenerChain.
// A nil next makes l the last listener.
func LinkTo(l Chained, next Listener) {
	l.chaining().attach(fixedView{next}, KeyOf(l), l)
}

type fixedView struct{ next Listener }

func (v fixedView) NextListener(ChainKey) Listener { return v.next }

// Key returns the chain slot the listener is registered under, or nil.
func (c *ChainingListener) Key() ChainKey { return c.key }

// View returns the chain the listener is attached to, or nil.
func (c *ChainingListener) View() ChainView { return c.view }

// Next returns the listener following this one, or nil if this one is last.
func (c *ChainingListener) Next() Listener {
	if c.view == nil {
		return nil
	}
	return c.view.NextListener(c.key)
}

// BeginListItem forwards the event, or routes it through
// BeginSimpleListItem when the embedding type implements
// SimpleListItemListener. A type that overrides BeginListItem must pass
// the event on with ForwardBeginListItem rather than this method.
func (c *ChainingListener) BeginListItem(params Params) {
	if s, ok := c.self.(SimpleListItemListener); ok {
		c.route(Event{Kind: KindBeginListItem, Params: params}, s.BeginSimpleListItem)
		return
	}
	c.ForwardBeginListItem(params)
}

func (c *ChainingListener) EndListItem(params Params) {
	if s, ok := c.self.(SimpleListItemListener); ok {
		c.route(Event{Kind: KindEndListItem, Params: params}, s.EndSimpleListItem)
		return
	}
	c.ForwardEndListItem(params)
}

// OnImage forwards the event, or routes it through OnSimpleImage when the
// embedding type implements SimpleImageListener.
func (c *ChainingListener) OnImage(ref ResourceReference, freestanding bool, id string, params Params) {
	if s, ok := c.self.(SimpleImageListener); ok {
		e := Event{Kind: KindOnImage, Reference: ref, Freestanding: freestanding, ID: id, Params: params}
		c.route(e, func() { s.OnSimpleImage(ref, freestanding, params) })
		return
	}
	c.ForwardImage(ref, freestanding, id, params)
}

// route calls the simple form of e. The simple form decides whether e
// goes further with ForwardSimple.
func (c *ChainingListener) route(e Event, simple func()) {
	saved := c.routed
	c.routed = &e
	defer func() { c.routed = saved }()
	simple()
}

// ForwardSimple passes on, unchanged, the event currently routed through a
// simple form method. Outside such a method it does nothing.
func (c *ChainingListener) ForwardSimple() {
	if c.routed == nil {
		return
	}
	if next := c.Next(); next != nil {
		c.routed.Send(next)
	}
}

func (c *ChainingListener) ForwardBeginListItem(params Params) {
	if next := c.Next(); next != nil {
		next.BeginListItem(params)
	}
}

func (c *ChainingListener) ForwardEndListItem(params Params) {
	if next := c.Next(); next != nil {
		next.EndListItem(params)
	}
}

func (c *ChainingListener) ForwardImage(ref ResourceReference, freestanding bool, id string, params Params) {
	if next := c.Next(); next != nil {
		next.OnImage(ref, freestanding, id, params)
	}
}

func (c *ChainingListener) BeginDocument(meta MetaData) {
	if next := c.Next(); next != nil {
		next.BeginDocument(meta)
	}
}

func (c *ChainingListener) EndDocument(meta MetaData) {
	if next := c.Next(); next != nil {
		next.EndDocument(meta)
	}
}

func (c *ChainingListener) BeginGroup(params Params) {
	if next := c.Next(); next != nil {
		next.BeginGroup(params)
	}
}

func (c *ChainingListener) EndGroup(params Params) {
	if next := c.Next(); next != nil {
		next.EndGroup(params)
	}
}

func (c *ChainingListener) BeginFormat(format Format, params Params) {
	if next := c.Next(); next != nil {
		next.BeginFormat(format, params)
	}
}

func (c *ChainingListener) EndFormat(format Format, params Params) {
	if next := c.Next(); next != nil {
		next.EndFormat(format, params)
	}
}

func (c *ChainingListener) BeginParagraph(params Params) {
	if next := c.Next(); next != nil {
		next.BeginParagraph(params)
	}
}

func (c *ChainingListener) EndParagraph(params Params) {
	if next := c.Next(); next != nil {
		next.EndParagraph(params)
	}
}

func (c *ChainingListener) BeginList(typ ListType, params Params) {
	if next := c.Next(); next != nil {
		next.BeginList(typ, params)
	}
}

func (c *ChainingListener) EndList(typ ListType, params Params) {
	if next := c.Next(); next != nil {
		next.EndList(typ, params)
	}
}

func (c *ChainingListener) BeginDefinitionList(params Params) {
	if next := c.Next(); next != nil {
		next.BeginDefinitionList(params)
	}
}

func (c *ChainingListener) EndDefinitionList(params Params) {
	if next := c.Next(); next != nil {
		next.EndDefinitionList(params)
	}
}

func (c *ChainingListener) BeginDefinitionTerm() {
	if next := c.Next(); next != nil {
		next.BeginDefinitionTerm()
	}
}

func (c *ChainingListener) EndDefinitionTerm() {
	if next := c.Next(); next != nil {
		next.EndDefinitionTerm()
	}
}

func (c *ChainingListener) BeginDefinitionDescription() {
	if next := c.Next(); next != nil {
		next.BeginDefinitionDescription()
	}
}

func (c *ChainingListener) EndDefinitionDescription() {
	if next := c.Next(); next != nil {
		next.EndDefinitionDescription()
	}
}

func (c *ChainingListener) BeginMacroMarker(name string, params Params, content string, inline bool) {
	if next := c.Next(); next != nil {
		next.BeginMacroMarker(name, params, content, inline)
	}
}

func (c *ChainingListener) EndMacroMarker(name string, params Params, content string, inline bool) {
	if next := c.Next(); next != nil {
		next.EndMacroMarker(name, params, content, inline)
	}
}

func (c *ChainingListener) BeginSection(params Params) {
	if next := c.Next(); next != nil {
		next.BeginSection(params)
	}
}

func (c *ChainingListener) EndSection(params Params) {
	if next := c.Next(); next != nil {
		next.EndSection(params)
	}
}

func (c *ChainingListener) BeginHeader(level HeaderLevel, id string, params Params) {
	if next := c.Next(); next != nil {
		next.BeginHeader(level, id, params)
	}
}

func (c *ChainingListener) EndHeader(level HeaderLevel, id string, params Params) {
	if next := c.Next(); next != nil {
		next.EndHeader(level, id, params)
	}
}

func (c *ChainingListener) BeginQuotation(params Params) {
	if next := c.Next(); next != nil {
		next.BeginQuotation(params)
	}
}

func (c *ChainingListener) EndQuotation(params Params) {
	if next := c.Next(); next != nil {
		next.EndQuotation(params)
	}
}

func (c *ChainingListener) BeginQuotationLine() {
	if next := c.Next(); next != nil {
		next.BeginQuotationLine()
	}
}

func (c *ChainingListener) EndQuotationLine() {
	if next := c.Next(); next != nil {
		next.EndQuotationLine()
	}
}

func (c *ChainingListener) BeginTable(params Params) {
	if next := c.Next(); next != nil {
		next.BeginTable(params)
	}
}

func (c *ChainingListener) EndTable(params Params) {
	if next := c.Next(); next != nil {
		next.EndTable(params)
	}
}

func (c *ChainingListener) BeginTableRow(params Params) {
	if next := c.Next(); next != nil {
		next.BeginTableRow(params)
	}
}

func (c *ChainingListener) EndTableRow(params Params) {
	if next := c.Next(); next != nil {
		next.EndTableRow(params)
	}
}

func (c *ChainingListener) BeginTableCell(params Params) {
	if next := c.Next(); next != nil {
		next.BeginTableCell(params)
	}
}

func (c *ChainingListener) EndTableCell(params Params) {
	if next := c.Next(); next != nil {
		next.EndTableCell(params)
	}
}

func (c *ChainingListener) BeginTableHeadCell(params Params) {
	if next := c.Next(); next != nil {
		next.BeginTableHeadCell(params)
	}
}

func (c *ChainingListener) EndTableHeadCell(params Params) {
	if next := c.Next(); next != nil {
		next.EndTableHeadCell(params)
	}
}

func (c *ChainingListener) BeginLink(ref ResourceReference, freestanding bool, params Params) {
	if next := c.Next(); next != nil {
		next.BeginLink(ref, freestanding, params)
	}
}

func (c *ChainingListener) EndLink(ref ResourceReference, freestanding bool, params Params) {
	if next := c.Next(); next != nil {
		next.EndLink(ref, freestanding, params)
	}
}

func (c *ChainingListener) BeginMetaData(meta MetaData) {
	if next := c.Next(); next != nil {
		next.BeginMetaData(meta)
	}
}

func (c *ChainingListener) EndMetaData(meta MetaData) {
	if next := c.Next(); next != nil {
		next.EndMetaData(meta)
	}
}

func (c *ChainingListener) BeginFigure(params Params) {
	if next := c.Next(); next != nil {
		next.BeginFigure(params)
	}
}

func (c *ChainingListener) EndFigure(params Params) {
	if next := c.Next(); next != nil {
		next.EndFigure(params)
	}
}

func (c *ChainingListener) BeginFigureCaption(params Params) {
	if next := c.Next(); next != nil {
		next.BeginFigureCaption(params)
	}
}

func (c *ChainingListener) EndFigureCaption(params Params) {
	if next := c.Next(); next != nil {
		next.EndFigureCaption(params)
	}
}

func (c *ChainingListener) OnNewLine() {
	if next := c.Next(); next != nil {
		next.OnNewLine()
	}
}

func (c *ChainingListener) OnMacro(name string, params Params, content string, inline bool) {
	if next := c.Next(); next != nil {
		next.OnMacro(name, params, content, inline)
	}
}

func (c *ChainingListener) OnWord(word string) {
	if next := c.Next(); next != nil {
		next.OnWord(word)
	}
}

func (c *ChainingListener) OnSpace() {
	if next := c.Next(); next != nil {
		next.OnSpace()
	}
}

func (c *ChainingListener) OnSpecialSymbol(symbol rune) {
	if next := c.Next(); next != nil {
		next.OnSpecialSymbol(symbol)
	}
}

func (c *ChainingListener) OnID(name string) {
	if next := c.Next(); next != nil {
		next.OnID(name)
	}
}

func (c *ChainingListener) OnHorizontalLine(params Params) {
	if next := c.Next(); next != nil {
		next.OnHorizontalLine(params)
	}
}

func (c *ChainingListener) OnEmptyLines(count int) {
	if next := c.Next(); next != nil {
		next.OnEmptyLines(count)
	}
}

func (c *ChainingListener) OnVerbatim(content string, inline bool, params Params) {
	if next := c.Next(); next != nil {
		next.OnVerbatim(content, inline, params)
	}
}

func (c *ChainingListener) OnRawText(text string, syntax Syntax) {
	if next := c.Next(); next != nil {
		next.OnRawText(text, syntax)
	}
}
