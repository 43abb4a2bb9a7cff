package wiki

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConsecutiveNewLines(t *testing.T) {
	nl := NewConsecutiveNewLineListener()
	var got []int
	e := probe(nl, func(e Event) {
		got = append(got, nl.NewLineCount())
	})
	e.BeginParagraph(nil)
	e.OnNewLine()
	e.OnNewLine()
	e.OnNewLine()
	e.OnWord("a")
	e.OnNewLine()
	e.EndParagraph(nil)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 0, 1, 0}, got); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestConsecutiveNewLinesResetByAnyEvent(t *testing.T) {
	nl := NewConsecutiveNewLineListener()
	LinkTo(nl, nil)
	reset := []func(){
		func() { nl.OnSpace() },
		func() { nl.OnSpecialSymbol('*') },
		func() { nl.OnEmptyLines(2) },
		func() { nl.BeginFormat(FormatItalic, nil) },
		func() { nl.EndFormat(FormatItalic, nil) },
		func() { nl.OnImage(ResourceReference{}, false, "", nil) },
		func() { nl.BeginListItem(nil) },
		func() { nl.OnRawText("x", SyntaxHTML) },
	}
	for i, f := range reset {
		nl.OnNewLine()
		nl.OnNewLine()
		f()
		if nl.NewLineCount() != 0 {
			t.Errorf("event %d did not reset the count", i)
		}
	}
}
