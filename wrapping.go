package wiki

// WrappingListener forwards every event to its wrapped listener, if any.
type WrappingListener struct {
	EventFunc

	wrapped Listener
}

func NewWrappingListener(wrapped Listener) *WrappingListener {
	w := &WrappingListener{wrapped: wrapped}
	w.EventFunc = w.forward
	return w
}

func (w *WrappingListener) forward(e Event) {
	if w.wrapped != nil {
		e.Send(w.wrapped)
	}
}

func (w *WrappingListener) Wrapped() Listener { return w.wrapped }

func (w *WrappingListener) SetWrapped(l Listener) { w.wrapped = l }

// InlineFilterListener passes on the inline content of a single-paragraph
// document: document, section and paragraph boundaries are dropped.
type InlineFilterListener struct {
	WrappingListener
}

func NewInlineFilterListener(wrapped Listener) *InlineFilterListener {
	f := &InlineFilterListener{WrappingListener{wrapped: wrapped}}
	f.EventFunc = func(e Event) {
		switch e.Kind {
		case KindBeginDocument, KindEndDocument,
			KindBeginSection, KindEndSection,
			KindBeginParagraph, KindEndParagraph:
			return
		}
		f.forward(e)
	}
	return f
}
