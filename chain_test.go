package wiki

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tracer records the words it sees, prefixed with its name.
type tracer struct {
	ChainingListener
	name  string
	trace *[]string
}

func (l *tracer) OnWord(word string) {
	*l.trace = append(*l.trace, l.name+":"+word)
	l.ChainingListener.OnWord(word)
}

// counter is a stackable word counter.
type counter struct {
	ChainingListener
	words int
}

func (l *counter) NewInstance() Listener { return &counter{} }

func (l *counter) OnWord(word string) {
	l.words++
	l.ChainingListener.OnWord(word)
}

func tracedChain(trace *[]string, names ...string) *ListenerChain {
	c := NewListenerChain()
	for _, n := range names {
		c.AddKeyedListener(n, &tracer{name: n, trace: trace}, -1)
	}
	return c
}

func TestChainOrder(t *testing.T) {
	var trace []string
	c := tracedChain(&trace, "L1", "L2", "L3")
	c.Entry().OnWord("x")
	c.Head().OnWord("y")
	want := []string{"L1:x", "L2:x", "L3:x", "L1:y", "L2:y", "L3:y"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestChainInsert(t *testing.T) {
	var trace []string
	c := tracedChain(&trace, "L1", "L3")
	c.AddKeyedListener("L2", &tracer{name: "L2", trace: &trace}, 1)
	c.AddKeyedListener("L0", &tracer{name: "L0", trace: &trace}, 0)
	c.AddKeyedListener("L4", &tracer{name: "L4", trace: &trace}, 99)
	if diff := cmp.Diff([]ChainKey{"L0", "L1", "L2", "L3", "L4"}, c.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := c.IndexOf("L3"); got != 3 {
		t.Errorf("IndexOf(L3) = %d, want 3", got)
	}
	if got := c.IndexOf("nope"); got != -1 {
		t.Errorf("IndexOf(nope) = %d, want -1", got)
	}
	c.Entry().OnWord("w")
	if got := strings.Join(trace, ","); got != "L0:w,L1:w,L2:w,L3:w,L4:w" {
		t.Errorf("got trace %s", got)
	}
}

func TestChainDefaultKeys(t *testing.T) {
	c := NewListenerChain(NewBlockStateListener(), NewMetaDataListener())
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.IndexOf(KeyFor[*BlockStateListener]()) != 0 {
		t.Errorf("block state listener not first")
	}
	if c.IndexOf(KeyOf(NewMetaDataListener())) != 1 {
		t.Errorf("metadata listener not second")
	}
	if l := c.NextListener(KeyFor[*MetaDataListener]()); l != nil {
		t.Errorf("NextListener of last slot = %v, want nil", l)
	}
	if l := c.NextListener("unknown"); l != nil {
		t.Errorf("NextListener of unknown slot = %v, want nil", l)
	}
	if _, ok := c.NextListener(KeyFor[*BlockStateListener]()).(*MetaDataListener); !ok {
		t.Errorf("NextListener of first slot is not the metadata listener")
	}
}

func TestChainLookup(t *testing.T) {
	bs := NewBlockStateListener()
	c := NewListenerChain(NewMetaDataListener(), bs)
	got, ok := Lookup[*BlockStateListener](c)
	if !ok || got != bs {
		t.Errorf("Lookup returned %p, %v", got, ok)
	}
	if _, ok := Lookup[*SectionGeneratorListener](c); ok {
		t.Errorf("Lookup found an unregistered listener")
	}
	// A keyed slot is found by the type of its instance.
	cnt := &counter{}
	c.AddKeyedListener("words", cnt, -1)
	if got, ok := Lookup[*counter](c); !ok || got != cnt {
		t.Errorf("Lookup of keyed slot returned %p, %v", got, ok)
	}
}

func TestChainPushPop(t *testing.T) {
	var trace []string
	c := tracedChain(&trace, "first")
	base := &counter{}
	c.AddKeyedListener("count", base, -1)

	c.Entry().OnWord("a")
	c.PushListener("count")
	// The non-stackable slot is left alone.
	c.PushListener("first")
	if got := len(c.stacks["first"]); got != 1 {
		t.Errorf("non-stackable slot depth = %d, want 1", got)
	}
	pushed := c.Listener("count").(*counter)
	if pushed == base {
		t.Fatal("push did not create a fresh instance")
	}
	c.Entry().OnWord("b")
	c.Entry().OnWord("c")
	if pushed.words != 2 || base.words != 1 {
		t.Errorf("words: pushed %d, base %d; want 2, 1", pushed.words, base.words)
	}
	c.PopListener("count")
	if c.Listener("count") != base {
		t.Fatal("pop did not restore the base instance")
	}
	c.Entry().OnWord("d")
	if base.words != 2 {
		t.Errorf("base words = %d, want 2", base.words)
	}
	if diff := cmp.Diff([]string{"first:a", "first:b", "first:c", "first:d"}, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestChainPopLastInstance(t *testing.T) {
	c := NewListenerChain()
	c.AddKeyedListener("count", &counter{}, -1)
	c.PopListener("count")
	if c.Len() != 0 || c.Head() != nil {
		t.Errorf("slot survived the pop of its last instance")
	}
}

func TestChainPushAll(t *testing.T) {
	bs := NewBlockStateListener()
	md := NewMetaDataListener()
	c := NewListenerChain(bs, md)
	c.PushAllStackableListeners()
	if c.Listener(KeyOf(bs)) == bs {
		t.Errorf("stackable block state listener was not pushed")
	}
	if c.Listener(KeyOf(md)) != md {
		t.Errorf("metadata listener was pushed")
	}
	c.PopAllStackableListeners()
	if c.Listener(KeyOf(bs)) != bs {
		t.Errorf("block state listener was not restored")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestChainRemove(t *testing.T) {
	var trace []string
	c := tracedChain(&trace, "L1", "L2", "L3")
	c.RemoveListener("L2")
	c.Entry().OnWord("x")
	if got := strings.Join(trace, ","); got != "L1:x,L3:x" {
		t.Errorf("got trace %s", got)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("removing an unregistered listener did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "L2") {
			t.Errorf("panic message %q does not name the key", msg)
		}
	}()
	c.RemoveListener("L2")
}

func TestChainEntryFollowsHead(t *testing.T) {
	c := NewListenerChain()
	base := &counter{}
	c.AddKeyedListener("count", base, -1)
	entry := c.Entry()
	c.PushListener("count")
	entry.OnWord("a")
	if base.words != 0 {
		t.Errorf("entry sent to the shadowed instance")
	}
	if got := c.Head().(*counter).words; got != 1 {
		t.Errorf("head words = %d, want 1", got)
	}
	// Events to an empty chain are dropped.
	NewListenerChain().Entry().OnWord("lost")
}

func TestChainTerminal(t *testing.T) {
	q := NewQueue()
	c := NewListenerChain(NewBlockStateListener(), q)
	c.Entry().OnWord("a")
	c.Entry().OnSpace()
	want := []Event{{Kind: KindOnWord, Text: "a"}, {Kind: KindOnSpace}}
	if diff := cmp.Diff(want, q.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
