package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/growler/go-wiki"
)

func parse(t *testing.T, p *Parser, src string) *wiki.Document {
	t.Helper()
	g := wiki.NewGenerator()
	if err := p.Parse([]byte(src), g); err != nil {
		t.Fatal(err)
	}
	return g.Document()
}

func events(t *testing.T, src string) []wiki.Event {
	t.Helper()
	q := wiki.NewQueue()
	if err := New().Parse([]byte(src), q); err != nil {
		t.Fatal(err)
	}
	return q.Events()
}

func words(b wiki.Block) string {
	var w []string
	wiki.Query(b, func(x *wiki.Word) wiki.WalkResult {
		w = append(w, x.Text)
		return wiki.WalkContinue
	})
	return strings.Join(w, ",")
}

func TestParseHeaderParagraph(t *testing.T) {
	got := events(t, "# Title\n\nHello *world*.\n")
	want := []wiki.Event{
		{Kind: wiki.KindBeginDocument, Meta: wiki.MetaData{{Key: wiki.MetaSyntax, Value: wiki.SyntaxMarkdown}}},
		{Kind: wiki.KindBeginHeader, Level: wiki.Level1, ID: "title"},
		{Kind: wiki.KindOnWord, Text: "Title"},
		{Kind: wiki.KindEndHeader, Level: wiki.Level1, ID: "title"},
		{Kind: wiki.KindBeginParagraph},
		{Kind: wiki.KindOnWord, Text: "Hello"},
		{Kind: wiki.KindOnSpace},
		{Kind: wiki.KindBeginFormat, Format: wiki.FormatItalic},
		{Kind: wiki.KindOnWord, Text: "world"},
		{Kind: wiki.KindEndFormat, Format: wiki.FormatItalic},
		{Kind: wiki.KindOnSpecialSymbol, Symbol: '.'},
		{Kind: wiki.KindEndParagraph},
		{Kind: wiki.KindEndDocument, Meta: wiki.MetaData{{Key: wiki.MetaSyntax, Value: wiki.SyntaxMarkdown}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBalanced(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "all.md"))
	if err != nil {
		t.Fatal(err)
	}
	depth := 0
	for _, e := range events(t, string(src)) {
		switch {
		case e.Kind.IsBegin():
			depth++
		case e.Kind.IsEnd():
			depth--
		}
		if depth < 0 {
			t.Fatalf("unbalanced %s", e)
		}
	}
	if depth != 0 {
		t.Errorf("stream left %d scopes open", depth)
	}
}

func TestParseBlocks(t *testing.T) {
	doc, err := parseFile(t, filepath.Join("testdata", "all.md"))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Meta.Get(wiki.MetaSource) != filepath.Join("testdata", "all.md") {
		t.Errorf("source not recorded: %v", doc.Meta)
	}

	var items []string
	wiki.Query(doc, func(l *wiki.BulletedList) wiki.WalkResult {
		for _, c := range l.Children() {
			items = append(items, words(c))
		}
		return wiki.WalkSkip
	})
	if diff := cmp.Diff([]string{"one", "two", "done"}, items); diff != "" {
		t.Errorf("bulleted items mismatch (-want +got):\n%s", diff)
	}

	nl, ok := wiki.FirstBlock[*wiki.NumberedList](doc)
	if !ok || len(nl.Children()) != 2 || nl.Param("start") != "3" {
		t.Errorf("numbered list %v", nl)
	}

	q, ok := wiki.FirstBlock[*wiki.Quotation](doc)
	if !ok || words(q) != "quoted" {
		t.Errorf("quotation %v", q)
	} else if _, ok := q.Children()[0].(*wiki.QuotationLine); !ok {
		t.Errorf("quotation content is %T", q.Children()[0])
	}

	table, ok := wiki.FirstBlock[*wiki.Table](doc)
	if !ok || len(table.Children()) != 2 {
		t.Fatalf("table %v", table)
	}
	head := table.Children()[0].Children()
	if len(head) != 2 || !wiki.Is[*wiki.TableHeadCell](head[0]) || head[1].Param("align") != "center" {
		t.Errorf("head row %v", head)
	}
	body := table.Children()[1].Children()
	if len(body) != 2 || !wiki.Is[*wiki.TableCell](body[0]) || words(body[1]) != "c2" {
		t.Errorf("body row %v", body)
	}

	var macros []string
	wiki.Query(doc, func(m *wiki.Macro) wiki.WalkResult {
		macros = append(macros, m.Name)
		switch m.Name {
		case "code":
			if m.Param("language") != "go" || m.Content != "x := 1\n" || m.Inline {
				t.Errorf("code macro %+v %v", m, m.Params())
			}
		case "checkbox":
			if m.Param("checked") != "true" || !m.Inline {
				t.Errorf("checkbox macro %v", m.Params())
			}
		}
		return wiki.WalkContinue
	})
	if diff := cmp.Diff([]string{"code", "checkbox"}, macros); diff != "" {
		t.Errorf("macros mismatch (-want +got):\n%s", diff)
	}

	v, ok := wiki.FirstBlock[*wiki.Verbatim](doc)
	if !ok || !v.Inline || v.Content != "inline code" {
		t.Errorf("verbatim %+v", v)
	}

	dl, ok := wiki.FirstBlock[*wiki.DefinitionList](doc)
	if !ok {
		t.Errorf("no definition list")
	} else {
		term, _ := wiki.FirstBlock[*wiki.DefinitionTerm](dl)
		desc, _ := wiki.FirstBlock[*wiki.DefinitionDescription](dl)
		if words(term) != "Term" || words(desc) != "Definition" {
			t.Errorf("definition list %q, %q", words(term), words(desc))
		}
	}

	var links []*wiki.Link
	wiki.Query(doc, func(l *wiki.Link) wiki.WalkResult {
		links = append(links, l)
		return wiki.WalkContinue
	})
	if len(links) != 3 {
		t.Fatalf("got %d links", len(links))
	}
	if r := links[0].Reference; r.Type != wiki.ResourceURL || r.Reference != "https://example.com" || !links[0].Freestanding || len(links[0].Children()) != 0 {
		t.Errorf("autolink %+v", links[0])
	}
	if r := links[1].Reference; r.Type != wiki.ResourceDocument || r.Reference != "doc.md" || links[1].Param("title") != "T" || words(links[1]) != "link" {
		t.Errorf("link %+v", links[1])
	}
	if r := links[2].Reference; r.Type != wiki.ResourceMailTo || r.Reference != "me@example.com" {
		t.Errorf("mail link %+v", links[2])
	}

	img, ok := wiki.FirstBlock[*wiki.Image](doc)
	if !ok || img.Reference.Reference != "i.png" || img.Param("alt") != "alt text" {
		t.Errorf("image %+v", img)
	}

	if _, ok := wiki.FirstBlock[*wiki.HorizontalLine](doc); !ok {
		t.Errorf("no horizontal line")
	}
	if r, ok := wiki.FirstBlock[*wiki.Raw](doc); !ok || r.Syntax != wiki.SyntaxHTML || !strings.HasPrefix(r.Text, "<div>") {
		t.Errorf("raw html %+v", r)
	}
	var strike bool
	wiki.Query(doc, func(f *wiki.FormatBlock) wiki.WalkResult {
		if f.Format == wiki.FormatStrikedOut && words(f) == "gone" {
			strike = true
		}
		return wiki.WalkContinue
	})
	if !strike {
		t.Errorf("no strikeout")
	}
}

func parseFile(t *testing.T, path string) (*wiki.Document, error) {
	t.Helper()
	g := wiki.NewGenerator()
	if err := New().ParseFile(path, g); err != nil {
		return nil, err
	}
	return g.Document(), nil
}

func TestParseLineBreaks(t *testing.T) {
	var got []string
	for _, e := range events(t, "a\nb\\\nc\n") {
		switch e.Kind {
		case wiki.KindOnWord:
			got = append(got, e.Text)
		case wiki.KindOnSpace:
			got = append(got, "_")
		case wiki.KindOnNewLine:
			got = append(got, "NL")
		}
	}
	if diff := cmp.Diff([]string{"a", "_", "b", "NL", "c"}, got); diff != "" {
		t.Errorf("line breaks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNormalizes(t *testing.T) {
	doc := parse(t, New(), "café\n")
	if got := words(doc); got != "café" {
		t.Errorf("got %q", got)
	}
}

func TestParseWithoutExtensions(t *testing.T) {
	doc := parse(t, New(WithExtensions()), "| a |\n|---|\n| b |\n\n~~x~~\n")
	if _, ok := wiki.FirstBlock[*wiki.Table](doc); ok {
		t.Errorf("table parsed without the table extension")
	}
	if _, ok := wiki.FirstBlock[*wiki.FormatBlock](doc); ok {
		t.Errorf("strikethrough parsed without the extension")
	}
}

func TestParseWithMeta(t *testing.T) {
	doc := parse(t, New(WithMeta(wiki.MetaData{{Key: wiki.MetaBaseURL, Value: "http://example.com/"}})), "x\n")
	if doc.Meta.Get(wiki.MetaBaseURL) != "http://example.com/" || doc.Meta.Get(wiki.MetaSyntax) != wiki.SyntaxMarkdown {
		t.Errorf("meta %v", doc.Meta)
	}
}

func TestExtensionsByName(t *testing.T) {
	ext, err := ExtensionsByName([]string{"Table", ExtTaskList})
	if err != nil || len(ext) != 2 {
		t.Errorf("got %v, %v", ext, err)
	}
	if _, err := ExtensionsByName([]string{"footnotes"}); err == nil {
		t.Errorf("unknown extension accepted")
	}
}

func TestReference(t *testing.T) {
	var tests = []struct {
		dest string
		want wiki.ResourceReference
	}{
		{"http://a/b", wiki.ResourceReference{Type: wiki.ResourceURL, Reference: "http://a/b"}},
		{"mailto:x@y", wiki.ResourceReference{Type: wiki.ResourceMailTo, Reference: "x@y", Typed: true}},
		{"data:image/png;base64,AA", wiki.ResourceReference{Type: wiki.ResourceData, Reference: "image/png;base64,AA", Typed: true}},
		{"../other.md#x", wiki.ResourceReference{Type: wiki.ResourceDocument, Reference: "../other.md#x"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, reference(tt.dest)); diff != "" {
			t.Errorf("reference(%q) mismatch (-want +got):\n%s", tt.dest, diff)
		}
	}
}
