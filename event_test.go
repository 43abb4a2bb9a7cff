package wiki

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEventKinds(t *testing.T) {
	begins, ends, ons := 0, 0, 0
	for k := KindNone + 1; k < kindCount; k++ {
		switch {
		case k.IsBegin():
			begins++
			if p := k.Partner(); !p.IsEnd() || p.Partner() != k {
				t.Errorf("%s: partner %s", k, p)
			}
			if k.Fields() != k.Partner().Fields() {
				t.Errorf("%s: signature differs from its end event", k)
			}
		case k.IsEnd():
			ends++
		case k.IsOn():
			ons++
			if k.Partner() != KindNone {
				t.Errorf("%s has a partner", k)
			}
		default:
			t.Errorf("%s has no class", k)
		}
		if got, ok := ParseEventKind(k.String()); !ok || got != k {
			t.Errorf("ParseEventKind(%q) = %s, %v", k.String(), got, ok)
		}
	}
	if begins != 22 || ends != 22 || ons != 11 {
		t.Errorf("got %d begin, %d end, %d on kinds", begins, ends, ons)
	}
	if _, ok := ParseEventKind("OnNothing"); ok {
		t.Errorf("parsed an unknown kind")
	}
	if KindNone.IsBegin() || kindCount.IsOn() || EventKind(-1).IsEnd() {
		t.Errorf("invalid kinds are classified")
	}
	if got := EventKind(999).String(); got != "EventKind(999)" {
		t.Errorf("got %q", got)
	}
}

// allEvents has one event of every kind with its signature filled in.
func allEvents() []Event {
	ref := ResourceReference{Type: ResourceURL, Reference: "http://x", Params: Params{{"rel", "nofollow"}}}
	p := Params{{"k", "v"}}
	meta := MetaData{{MetaSource, "a.md"}}
	events := make([]Event, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		e := Event{Kind: k}
		f := k.Fields()
		if f&FieldParams != 0 {
			e.Params = p
		}
		if f&FieldMeta != 0 {
			e.Meta = meta
		}
		if f&FieldLevel != 0 {
			e.Level = Level3
		}
		if f&FieldListType != 0 {
			e.ListType = ListNumbered
		}
		if f&FieldFormat != 0 {
			e.Format = FormatSuperscript
		}
		if f&FieldID != 0 {
			e.ID = "id1"
		}
		if f&FieldName != 0 {
			e.Name = "toc"
		}
		if f&FieldContent != 0 {
			e.Content = "depth=2"
		}
		if f&FieldText != 0 {
			e.Text = "text"
		}
		if f&FieldInline != 0 {
			e.Inline = true
		}
		if f&FieldFreestanding != 0 {
			e.Freestanding = true
		}
		if f&FieldReference != 0 {
			e.Reference = ref
		}
		if f&FieldSyntax != 0 {
			e.Syntax = SyntaxXHTML
		}
		if f&FieldCount != 0 {
			e.Count = 3
		}
		if f&FieldSymbol != 0 {
			e.Symbol = '§'
		}
		events = append(events, e)
	}
	return events
}

func TestEventSend(t *testing.T) {
	want := allEvents()
	q := NewQueue()
	for _, e := range want {
		e.Send(q)
	}
	if diff := cmp.Diff(want, q.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEventSendNone(t *testing.T) {
	q := NewQueue()
	Event{}.Send(q)
	if q.Len() != 0 {
		t.Errorf("KindNone was delivered")
	}
}

func TestEventString(t *testing.T) {
	var tests = []struct {
		e    Event
		want string
	}{
		{Event{Kind: KindOnWord, Text: "hi"}, `OnWord text="hi"`},
		{Event{Kind: KindBeginHeader, Level: Level2, ID: "x"}, `BeginHeader level=2 id=x`},
		{Event{Kind: KindBeginList, ListType: ListBulleted, Params: Params{{"a", "b"}}}, `BeginList list=bulleted a="b"`},
		{Event{Kind: KindOnRawText, Text: "<p>", Syntax: SyntaxHTML}, `OnRawText text="<p>" syntax=html/5.0`},
		{Event{Kind: KindOnSpecialSymbol, Symbol: '*'}, `OnSpecialSymbol symbol='*'`},
		{Event{Kind: KindOnMacro, Name: "toc", Inline: true}, `OnMacro name=toc inline=true`},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
