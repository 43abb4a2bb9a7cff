package wiki

import (
	"fmt"
	"reflect"
	"slices"
)

// ChainKey identifies a slot of a ListenerChain. Any comparable value will
// do; the default key of a listener is its dynamic type.
type ChainKey any

// KeyOf returns the default key of a listener: its dynamic type.
func KeyOf(l Listener) ChainKey { return reflect.TypeOf(l) }

// KeyFor returns the default key of listeners of type T.
func KeyFor[T Listener]() ChainKey { return reflect.TypeOf((*T)(nil)).Elem() }

// ListenerChain is an ordered list of slots. Each slot holds a stack of
// listener instances; only the top instance of a slot receives events.
// A chain is not safe for concurrent use.
type ListenerChain struct {
	order  []ChainKey
	stacks map[ChainKey][]Listener
}

// NewListenerChain creates a chain and adds the listeners in order.
func NewListenerChain(listeners ...Listener) *ListenerChain {
	c := &ListenerChain{stacks: make(map[ChainKey][]Listener)}
	for _, l := range listeners {
		c.AddListener(l)
	}
	return c
}

var _ ChainView = (*ListenerChain)(nil)

// AddListener registers l under its default key, appending the slot if it
// is new.
func (c *ListenerChain) AddListener(l Listener) {
	c.AddKeyedListener(KeyOf(l), l, -1)
}

// InsertListener registers l under its default key. A new slot is placed at
// index; an index out of range appends.
func (c *ListenerChain) InsertListener(l Listener, index int) {
	c.AddKeyedListener(KeyOf(l), l, index)
}

// AddKeyedListener registers l under key. If the slot is new it is placed at
// index (appended when index is out of range or negative). If the slot
// exists, l is pushed on top of it and the order is left alone.
func (c *ListenerChain) AddKeyedListener(key ChainKey, l Listener, index int) {
	if c.stacks == nil {
		c.stacks = make(map[ChainKey][]Listener)
	}
	stack, ok := c.stacks[key]
	if !ok {
		if index < 0 || index > len(c.order) {
			index = len(c.order)
		}
		c.order = slices.Insert(c.order, index, key)
	}
	c.stacks[key] = append(stack, l)
	c.attach(key, l)
	log.Debug("add listener", "key", keyName(key), "index", c.IndexOf(key), "depth", len(stack)+1)
}

func (c *ListenerChain) attach(key ChainKey, l Listener) {
	if cl, ok := l.(Chained); ok {
		cl.chaining().attach(c, key, l)
	}
}

// RemoveListener pops the top instance of the slot; the slot itself goes
// away with its last instance. It panics if key is not registered.
func (c *ListenerChain) RemoveListener(key ChainKey) {
	stack, ok := c.stacks[key]
	if !ok {
		panic(fmt.Sprintf("wiki: remove of unregistered listener %s", keyName(key)))
	}
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(c.stacks, key)
		c.order = slices.DeleteFunc(c.order, func(k ChainKey) bool { return k == key })
	} else {
		c.stacks[key] = stack
	}
	log.Debug("remove listener", "key", keyName(key), "depth", len(stack))
}

// NextListener returns the top instance of the slot following key, or nil
// if key is last or unknown.
func (c *ListenerChain) NextListener(key ChainKey) Listener {
	i := c.IndexOf(key)
	if i < 0 || i+1 >= len(c.order) {
		return nil
	}
	return c.top(c.order[i+1])
}

// Listener returns the top instance registered under key, or nil.
func (c *ListenerChain) Listener(key ChainKey) Listener {
	return c.top(key)
}

func (c *ListenerChain) top(key ChainKey) Listener {
	stack := c.stacks[key]
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

// Lookup returns the top instance of the slot keyed by T's type or, failing
// that, of the first slot whose top instance is a T.
func Lookup[T Listener](c *ListenerChain) (T, bool) {
	if l, ok := c.top(KeyFor[T]()).(T); ok {
		return l, true
	}
	for _, key := range c.order {
		if l, ok := c.top(key).(T); ok {
			return l, true
		}
	}
	var zero T
	return zero, false
}

// IndexOf returns the position of the slot in the chain, or -1.
func (c *ListenerChain) IndexOf(key ChainKey) int {
	return slices.Index(c.order, key)
}

// PushListener pushes a fresh instance on the slot if its top instance is
// stackable. Other slots are left alone.
func (c *ListenerChain) PushListener(key ChainKey) {
	s, ok := c.top(key).(StackableListener)
	if !ok {
		return
	}
	l := s.NewInstance()
	c.stacks[key] = append(c.stacks[key], l)
	c.attach(key, l)
	log.Debugf("push listener %s (%d)", keyName(key), len(c.stacks[key]))
}

// PopListener pops the top instance of the slot if it is stackable. Popping
// the last instance removes the slot. A resumable instance uncovered by the
// pop is handed the popped one.
func (c *ListenerChain) PopListener(key ChainKey) {
	popped, ok := c.top(key).(StackableListener)
	if !ok {
		return
	}
	c.RemoveListener(key)
	if r, ok := c.top(key).(ResumableListener); ok {
		r.Resume(popped)
	}
}

// PushAllStackableListeners pushes a fresh instance on every stackable slot.
func (c *ListenerChain) PushAllStackableListeners() {
	for _, key := range slices.Clone(c.order) {
		c.PushListener(key)
	}
}

// PopAllStackableListeners pops the top instance of every stackable slot.
func (c *ListenerChain) PopAllStackableListeners() {
	for _, key := range slices.Clone(c.order) {
		c.PopListener(key)
	}
}

// Keys returns the slot keys in chain order.
func (c *ListenerChain) Keys() []ChainKey { return slices.Clone(c.order) }

// Len returns the number of slots.
func (c *ListenerChain) Len() int { return len(c.order) }

// Head returns the top instance of the first slot, or nil for an empty
// chain.
func (c *ListenerChain) Head() Listener {
	if len(c.order) == 0 {
		return nil
	}
	return c.top(c.order[0])
}

// Entry returns a listener that hands every event to the current head of
// the chain, so producers keep a stable target while slots are pushed and
// popped.
func (c *ListenerChain) Entry() Listener {
	return EventFunc(func(e Event) {
		if h := c.Head(); h != nil {
			e.Send(h)
		}
	})
}

func keyName(key ChainKey) string {
	if t, ok := key.(reflect.Type); ok {
		return t.String()
	}
	return fmt.Sprint(key)
}
