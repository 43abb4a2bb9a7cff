package wiki

import (
	"slices"
)

// Block is a node of a document tree. Container blocks emit a begin and an
// end event around their children when traversed; leaf blocks emit a
// single standalone event.
//
// Blocks must be created with [NewBlock] (or the constructors of package
// dot) so that they can be linked into a tree.
type Block interface {
	Tagged

	Parent() Block
	Children() []Block
	NextSibling() Block
	PreviousSibling() Block
	Root() Block

	Params() Params
	Param(key string) string
	SetParam(key, value string)

	AddChild(child Block)
	AddChildren(children ...Block)
	InsertChildBefore(child, before Block)
	InsertChildAfter(child, after Block)
	ReplaceChild(child, old Block)
	RemoveBlock(child Block)

	// Traverse sends the events of the block and its subtree to l.
	Traverse(l Listener)

	base() *node
	before(l Listener)
	after(l Listener)
	clone() Block
}

// node holds the tree links and parameters shared by all blocks.
type node struct {
	self     Block
	parent   Block
	prev     Block
	next     Block
	children []Block
	params   Params
}

func (n *node) base() *node { return n }

func (n *node) Parent() Block          { return n.parent }
func (n *node) Children() []Block      { return n.children }
func (n *node) NextSibling() Block     { return n.next }
func (n *node) PreviousSibling() Block { return n.prev }
func (n *node) Params() Params         { return n.params }
func (n *node) Param(key string) string {
	return n.params.Value(key)
}

func (n *node) SetParam(key, value string) {
	n.params = n.params.With(key, value)
}

// Root returns the topmost ancestor of the block, or the block itself.
func (n *node) Root() Block {
	r := n.self
	for r.Parent() != nil {
		r = r.Parent()
	}
	return r
}

func (n *node) AddChild(child Block) {
	n.insert(len(n.children), child)
}

func (n *node) AddChildren(children ...Block) {
	for _, c := range children {
		n.AddChild(c)
	}
}

// InsertChildBefore inserts child before the existing child before. A nil
// before inserts child first.
func (n *node) InsertChildBefore(child, before Block) {
	if before == nil {
		n.insert(0, child)
		return
	}
	if i := n.indexOf(before); i >= 0 {
		n.insert(i, child)
	}
}

// InsertChildAfter inserts child after the existing child after. A nil after
// appends child.
func (n *node) InsertChildAfter(child, after Block) {
	if after == nil {
		n.AddChild(child)
		return
	}
	if i := n.indexOf(after); i >= 0 {
		n.insert(i+1, child)
	}
}

// ReplaceChild puts child in place of the existing child old.
func (n *node) ReplaceChild(child, old Block) {
	i := n.indexOf(old)
	if i < 0 {
		return
	}
	n.remove(i)
	n.insert(i, child)
}

// RemoveBlock detaches the existing child from the block.
func (n *node) RemoveBlock(child Block) {
	if i := n.indexOf(child); i >= 0 {
		n.remove(i)
	}
}

func (n *node) indexOf(child Block) int {
	return slices.IndexFunc(n.children, func(c Block) bool { return c == child })
}

func (n *node) insert(i int, child Block) {
	switch p := child.Parent(); {
	case p == nil:
	case p == n.self:
		if j := n.indexOf(child); j >= 0 {
			n.remove(j)
			if j < i {
				i--
			}
		}
	default:
		p.RemoveBlock(child)
	}
	n.children = slices.Insert(n.children, i, child)
	n.relink(i)
}

func (n *node) remove(i int) {
	c := n.children[i].base()
	c.parent, c.prev, c.next = nil, nil, nil
	n.children = slices.Delete(n.children, i, i+1)
	if i > 0 {
		n.relink(i - 1)
	}
	if i < len(n.children) {
		n.relink(i)
	}
}

// relink fixes the parent and sibling links of the i-th child.
func (n *node) relink(i int) {
	c := n.children[i].base()
	c.parent = n.self
	c.prev, c.next = nil, nil
	if i > 0 {
		c.prev = n.children[i-1]
		n.children[i-1].base().next = n.children[i]
	}
	if i+1 < len(n.children) {
		c.next = n.children[i+1]
		n.children[i+1].base().prev = n.children[i]
	}
}

func (n *node) Traverse(l Listener) {
	n.self.before(l)
	for _, c := range n.children {
		c.Traverse(l)
	}
	n.self.after(l)
}

// NewBlock links b into a tree node with the given parameters and children
// and returns it.
//
// Example:
//
//	p := wiki.NewBlock(&wiki.Paragraph{}, nil,
//	    wiki.NewBlock(&wiki.Word{Text: "hello"}, nil))
func NewBlock[B Block](b B, params Params, children ...Block) B {
	n := b.base()
	n.self = b
	n.params = params
	n.AddChildren(children...)
	return b
}

// Clone returns a deep copy of b that keeps only the descendants for which
// keep returns true; a rejected block is dropped with its subtree. A nil
// keep copies everything. The copy has no parent.
func Clone[B Block](b B, keep func(Block) bool) B {
	return cloneBlock(b, keep).(B)
}

func cloneBlock(b Block, keep func(Block) bool) Block {
	c := b.clone()
	n := c.base()
	src := b.base()
	*n = node{self: c, params: src.params.Clone()}
	for _, child := range src.children {
		if keep == nil || keep(child) {
			n.AddChild(cloneBlock(child, keep))
		}
	}
	return c
}
