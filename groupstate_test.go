package wiki

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroupState(t *testing.T) {
	gs := NewGroupStateListener()
	var got []int
	e := probe(gs, func(e Event) {
		got = append(got, gs.GroupDepth())
	})
	e.BeginGroup(nil)
	e.BeginGroup(nil)
	e.EndGroup(nil)
	e.EndGroup(nil)
	if diff := cmp.Diff([]int{1, 2, 2, 1}, got); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
	if gs.IsInGroup() {
		t.Errorf("still in a group")
	}
}

func TestGroupStacking(t *testing.T) {
	bs := NewBlockStateListener()
	gs := NewGroupStateListener()
	c := NewListenerChain(NewGroupStackingListener(), gs, bs)
	current := func() *BlockStateListener {
		l, _ := Lookup[*BlockStateListener](c)
		return l
	}
	type seen struct {
		Groups, Lists, Index int
	}
	var got []seen
	c.AddListener(EventFunc(func(e Event) {
		if e.Kind == KindOnWord {
			cur := current()
			got = append(got, seen{gs.GroupDepth(), cur.ListDepth(), cur.ListItemIndex()})
		}
	}))

	e := c.Entry()
	e.BeginList(ListBulleted, nil)
	e.BeginListItem(nil)
	e.BeginListItem(nil)
	e.OnWord("outer")
	e.BeginGroup(nil)
	e.OnWord("group")
	e.BeginList(ListNumbered, nil)
	e.BeginListItem(nil)
	e.OnWord("inner")
	e.EndListItem(nil)
	e.EndList(ListNumbered, nil)
	e.EndGroup(nil)
	e.OnWord("restored")
	e.EndListItem(nil)
	e.EndList(ListBulleted, nil)

	want := []seen{
		{0, 1, 1},
		{1, 0, -1},
		{1, 1, 0},
		{0, 1, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if current() != bs {
		t.Errorf("original instance not restored")
	}
	if len(c.stacks[KeyOf(bs)]) != 1 {
		t.Errorf("pushed instances left on the stack")
	}
}

func TestGroupStackingUnattached(t *testing.T) {
	// Without a chain there is nothing to stack; events still flow.
	q := NewQueue()
	s := NewGroupStackingListener()
	LinkTo(s, q)
	s.BeginGroup(nil)
	s.EndGroup(nil)
	if q.Len() != 2 {
		t.Errorf("forwarded %d events, want 2", q.Len())
	}
}

func TestGroupStackingCarriesState(t *testing.T) {
	type seen struct {
		Empty    bool
		Previous EventKind
	}
	var (
		c   *ListenerChain
		got []seen
	)
	c, err := DefaultConf.Chain(EventFunc(func(e Event) {
		if e.Kind == KindEndParagraph {
			eb, _ := Lookup[*EmptyBlockListener](c)
			bs, _ := Lookup[*BlockStateListener](c)
			got = append(got, seen{eb.IsCurrentContainerBlockEmpty(), bs.PreviousEvent()})
		}
	}))
	if err != nil {
		t.Fatal(err)
	}
	e := c.Entry()
	e.BeginDocument(nil)
	e.BeginParagraph(nil)
	e.BeginGroup(nil)
	e.EndGroup(nil)
	e.EndParagraph(nil)
	e.BeginParagraph(nil)
	e.BeginGroup(nil)
	e.OnWord("a")
	e.EndGroup(nil)
	e.EndParagraph(nil)
	e.EndDocument(nil)

	want := []seen{
		{true, KindEndGroup},
		{false, KindEndGroup},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("state after group mismatch (-want +got):\n%s", diff)
	}
}

func TestConsecutiveNewLinesAcrossGroup(t *testing.T) {
	nl := NewConsecutiveNewLineListener()
	c := NewListenerChain(NewGroupStackingListener(), nl)
	e := c.Entry()
	e.OnNewLine()
	e.BeginGroup(nil)
	e.OnNewLine()
	e.OnNewLine()
	if l, _ := Lookup[*ConsecutiveNewLineListener](c); l.NewLineCount() != 2 {
		t.Errorf("Expected 2 new lines in the group, got %d", l.NewLineCount())
	}
	e.EndGroup(nil)
	if l, _ := Lookup[*ConsecutiveNewLineListener](c); l != nl || l.NewLineCount() != 0 {
		t.Errorf("Expected the outer instance with 0 new lines, got %d", l.NewLineCount())
	}
}
