package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/growler/go-wiki"
	. "github.com/growler/go-wiki/dot"
)

func TestDumpBlock(t *testing.T) {
	doc := Doc(wiki.MetaData{{Key: "title", Value: "T"}, {Key: "draft", Value: true}},
		Header(wiki.Level1, "t", Word("Hi")),
		ParaP(KVs("class", "x"), Bold(Word("a")), Symbol('!')),
		Link(URL("http://a"), Word("b")),
		Verbatim("v", true),
	)
	out, err := yaml.Marshal(DumpBlock(doc))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"tag":  "Document",
		"meta": map[string]any{"title": "T", "draft": true},
		"children": []any{
			map[string]any{
				"tag": "Header", "level": 1, "id": "t",
				"children": []any{map[string]any{"tag": "Word", "text": "Hi"}},
			},
			map[string]any{
				"tag":    "Paragraph",
				"params": map[string]any{"class": "x"},
				"children": []any{
					map[string]any{
						"tag": "FormatBlock", "format": "bold",
						"children": []any{map[string]any{"tag": "Word", "text": "a"}},
					},
					map[string]any{"tag": "SpecialSymbol", "symbol": "!"},
				},
			},
			map[string]any{
				"tag": "Link",
				"ref": map[string]any{"type": "url", "reference": "http://a"},
				"children": []any{map[string]any{"tag": "Word", "text": "b"}},
			},
			map[string]any{"tag": "Verbatim", "content": "v", "inline": true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}
