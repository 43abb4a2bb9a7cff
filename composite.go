package wiki

// CompositeListener sends every event to each of its listeners in the order
// they were added.
type CompositeListener struct {
	EventFunc

	listeners []Listener
}

func NewCompositeListener(listeners ...Listener) *CompositeListener {
	c := &CompositeListener{listeners: listeners}
	c.EventFunc = func(e Event) {
		for _, l := range c.listeners {
			e.Send(l)
		}
	}
	return c
}

func (c *CompositeListener) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *CompositeListener) Listeners() []Listener { return c.listeners }
