package wiki

import (
	"strconv"
	"strings"
	"testing"
)

func shape(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		switch e.Kind {
		case KindBeginSection:
			sb.WriteString("(")
		case KindEndSection:
			sb.WriteString(")")
		case KindBeginHeader:
			sb.WriteString("h" + strconv.Itoa(int(e.Level)))
		case KindOnWord:
			sb.WriteString(e.Text)
		case KindBeginDocument:
			sb.WriteString("[")
		case KindEndDocument:
			sb.WriteString("]")
		case KindBeginQuotation:
			sb.WriteString("<")
		case KindEndQuotation:
			sb.WriteString(">")
		}
	}
	return sb.String()
}

func header(l Listener, level HeaderLevel) {
	l.BeginHeader(level, "", nil)
	l.EndHeader(level, "", nil)
}

func TestSectionGenerator(t *testing.T) {
	q := NewQueue()
	sg := NewSectionGeneratorListener()
	e := NewListenerChain(sg, q).Entry()
	e.BeginDocument(nil)
	e.OnWord("a")
	header(e, Level1)
	e.OnWord("b")
	header(e, Level2)
	e.OnWord("c")
	header(e, Level2)
	e.OnWord("d")
	header(e, Level1)
	e.OnWord("e")
	header(e, Level3)
	e.EndDocument(nil)
	const expected = "[a(h1b(h2c)(h2d))(h1e((h3)))]"
	if result := shape(q.Events()); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
	if sg.SectionDepth() != 0 {
		t.Errorf("SectionDepth() = %d after the document", sg.SectionDepth())
	}
}

func TestSectionGeneratorContainers(t *testing.T) {
	q := NewQueue()
	sg := NewSectionGeneratorListener()
	e := NewListenerChain(sg, q).Entry()
	var depths []int
	e.BeginDocument(nil)
	header(e, Level1)
	depths = append(depths, sg.SectionDepth())
	e.BeginQuotation(nil)
	depths = append(depths, sg.SectionDepth())
	header(e, Level2)
	depths = append(depths, sg.SectionDepth())
	e.EndQuotation(nil)
	depths = append(depths, sg.SectionDepth())
	e.OnWord("x")
	e.EndDocument(nil)
	const expected = "[(h1<((h2))>x)]"
	if result := shape(q.Events()); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
	if got := depths; len(got) != 4 || got[0] != 1 || got[1] != 0 || got[2] != 2 || got[3] != 1 {
		t.Errorf("depths %v, want [1 0 2 1]", got)
	}
}

func TestSectionGeneratorInvalidLevel(t *testing.T) {
	q := NewQueue()
	sg := NewSectionGeneratorListener()
	LinkTo(sg, q)
	header(sg, HeaderLevel(0))
	if result := shape(q.Events()); result != "h0" {
		t.Errorf("got %q", result)
	}
}
