package wiki

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReadWriteRoundTrip(t *testing.T) {
	want := allEvents()
	var buf bytes.Buffer
	if err := WriteEvents(&buf, want); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	got, err := ReadEventSlice(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	// The same through a reader handing out one byte at a time.
	got, err = ReadEventSlice(iotest.OneByteReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLongStrings(t *testing.T) {
	long := strings.Repeat("abcdé\"\\\n", 300)
	want := []Event{
		{Kind: KindOnWord, Text: strings.Repeat("x", 2000)},
		{Kind: KindOnVerbatim, Content: long},
		{Kind: KindOnRawText, Text: long, Syntax: SyntaxHTML},
	}
	var buf bytes.Buffer
	if err := WriteEvents(&buf, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadEventSlice(iotest.HalfReader(&buf))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEscapes(t *testing.T) {
	in := `[{"t":"OnWord","text":"a\u00e9\ud83d\ude00\/\n"}]`
	got, err := ReadEventSlice(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Text != "aé😀/\n" {
		t.Errorf("got %q", got)
	}
}

func TestReadMeta(t *testing.T) {
	in := `[{"t":"BeginDocument","meta":{"n":3,"f":1.5,"b":true,"z":null,"syntax":"markdown/1.2"}}]`
	got, err := ReadEventSlice(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := MetaData{{"n", int64(3)}, {"f", 1.5}, {"b", true}, {"syntax", SyntaxMarkdown}}
	if diff := cmp.Diff(want, got[0].Meta); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	var tests = []struct {
		in   string
		want error
	}{
		{`[{"t":"OnNothing"}]`, ErrUnknownEvent},
		{`[{"t":"OnWord","level":1}]`, ErrSyntax},
		{`[{"t":"OnWord","bogus":1}]`, ErrSyntax},
		{`[{"text":"a"}]`, ErrSyntax},
		{`[{"t":"OnWord","text":"a"}`, ErrSyntax},
		{`[{"t":"OnWord","text":"a"}] x`, ErrSyntax},
		{`[{"t":"OnSpecialSymbol","symbol":"ab"}]`, ErrSyntax},
		{`[{"t":"BeginList","list":"zigzag"}]`, ErrSyntax},
		{`[{"t":"BeginHeader","level":1.5}]`, ErrSyntax},
		{`[{"t":"BeginHeader","level":99}]`, ErrSyntax},
		{`[{"t":"BeginHeader","level":0}]`, ErrSyntax},
		{`[{"t":"BeginParagraph","params":{"a":"1","a":"2"}}]`, ErrSyntax},
		{`[{"t":"OnWord","text":"a` + "\x01" + `"}]`, ErrSyntax},
		{`[{"t":"OnWord","text":"\ud83d"}]`, ErrSyntax},
		{`[{"t":"OnWord","text":"` + "\xff" + `"}]`, ErrSyntax},
		{`[{"t":"OnWord","text":"a"},]`, ErrSyntax},
		{`{"t":"OnWord"}`, ErrSyntax},
		{``, ErrSyntax},
	}
	for _, tt := range tests {
		err := ReadEvents(strings.NewReader(tt.in), NopListener{})
		if !errors.Is(err, tt.want) {
			t.Errorf("ReadEvents(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestReadDeliversBeforeError(t *testing.T) {
	q := NewQueue()
	err := ReadEvents(strings.NewReader(`[{"t":"OnSpace"},{"t":"Bad"}]`), q)
	if err == nil || !strings.Contains(err.Error(), "event 1") {
		t.Errorf("got error %v", err)
	}
	if q.Len() != 1 {
		t.Errorf("got %d events before the error, want 1", q.Len())
	}
}

func TestReadIntoChain(t *testing.T) {
	var buf bytes.Buffer
	doc := []Event{
		{Kind: KindBeginDocument},
		{Kind: KindBeginParagraph},
		{Kind: KindOnWord, Text: "a"},
		{Kind: KindEndParagraph},
		{Kind: KindEndDocument},
	}
	if err := WriteEvents(&buf, doc); err != nil {
		t.Fatal(err)
	}
	d, err := LoadFrom(&buf, DefaultConf)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := d.Children()[0].(*Paragraph)
	if !ok || p.Children()[0].(*Word).Text != "a" {
		t.Errorf("unexpected tree %v", d.Children())
	}
}
