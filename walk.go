package wiki

// WalkResult is the result of a walk operation.
type WalkResult int

// WalkContinue indicates that the walk operation should continue.
const WalkContinue WalkResult = 0

// WalkReplace indicates that the current block should be replaced with the
// blocks returned by the function.
const WalkReplace WalkResult = 1

// WalkSkip indicates that the children of the current block should not be
// processed.
const WalkSkip WalkResult = 2

// WalkStop indicates that the walk operation should stop immediately.
const WalkStop WalkResult = 3

// A convenience function to check if a block is of a particular type.
//
// Example:
//
//	if wiki.Is[*wiki.Paragraph](b) {
//	    ...
func Is[P any](b Block) bool {
	_, ok := b.(P)
	return ok
}

// Query applies fun to every descendant of root of type P, depth first in
// document order. fun is not applied to root itself.
//
// The WalkResult returned by fun controls the traversal:
//
//   - WalkStop: terminates the traversal immediately.
//   - WalkSkip: does not descend into the children of the current block.
//   - WalkContinue (or any other value): continues.
//
// Example:
//
//	var headers int
//	wiki.Query(doc, func(h *wiki.Header) wiki.WalkResult {
//	    headers++
//	    return wiki.WalkSkip
//	})
func Query[P any](root Block, fun func(P) WalkResult) {
	walk(root, func(b Block) WalkResult {
		if p, ok := b.(P); ok {
			return fun(p)
		}
		return WalkContinue
	})
}

// Walk applies fun to every descendant of root, depth first in document
// order, with the same traversal control as Query.
func Walk(root Block, fun func(Block) WalkResult) {
	walk(root, fun)
}

func walk(root Block, fun func(Block) WalkResult) WalkResult {
	for c := first(root); c != nil; c = c.NextSibling() {
		switch fun(c) {
		case WalkStop:
			return WalkStop
		case WalkSkip:
			continue
		}
		if walk(c, fun) == WalkStop {
			return WalkStop
		}
	}
	return WalkContinue
}

func first(b Block) Block {
	if cs := b.Children(); len(cs) > 0 {
		return cs[0]
	}
	return nil
}

// Filter applies fun to every descendant of root of type P and edits the
// tree in place according to the result:
//
//   - WalkReplace: replaces the current block with the returned blocks,
//     which are not walked. An empty result removes the block.
//   - WalkSkip, WalkStop and WalkContinue: as in Query.
//
// Example:
//
//	wiki.Filter(doc, func(w *wiki.Word) ([]wiki.Block, wiki.WalkResult) {
//	    if w.Text == "TODO" {
//	        return nil, wiki.WalkReplace
//	    }
//	    return nil, wiki.WalkContinue
//	})
func Filter[P Block](root Block, fun func(P) ([]Block, WalkResult)) {
	filter(root, fun)
}

func filter[P Block](root Block, fun func(P) ([]Block, WalkResult)) WalkResult {
	c := first(root)
	for c != nil {
		next := c.NextSibling()
		p, ok := c.(P)
		if !ok {
			if filter[P](c, fun) == WalkStop {
				return WalkStop
			}
			c = next
			continue
		}
		repl, res := fun(p)
		switch res {
		case WalkStop:
			return WalkStop
		case WalkReplace:
			for _, r := range repl {
				root.InsertChildBefore(r, c)
			}
			root.RemoveBlock(c)
		case WalkSkip:
		default:
			if filter[P](c, fun) == WalkStop {
				return WalkStop
			}
		}
		c = next
	}
	return WalkContinue
}

// FirstBlock returns the first descendant of root of type P in document
// order.
func FirstBlock[P any](root Block) (P, bool) {
	var (
		found P
		ok    bool
	)
	Query(root, func(p P) WalkResult {
		found, ok = p, true
		return WalkStop
	})
	return found, ok
}
