package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/growler/go-wiki"
)

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	outputFormat, treeFrom, configFile = "", "", ""
	stdin = strings.NewReader(in)
	t.Cleanup(func() { stdin = nil })
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStagesCommand(t *testing.T) {
	out, err := run(t, "", "stages")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wiki.StageNames(), strings.Fields(out)); diff != "" {
		t.Errorf("stages mismatch (-want +got):\n%s", diff)
	}
}

func TestEventsCommand(t *testing.T) {
	out, err := run(t, "# Hi\n", "events")
	if err != nil {
		t.Fatal(err)
	}
	events, err := wiki.ReadEventSlice(strings.NewReader(out))
	if err != nil {
		t.Fatalf("output is not an event stream: %v\n%s", err, out)
	}
	var kinds []wiki.EventKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	want := []wiki.EventKind{
		wiki.KindBeginDocument,
		wiki.KindBeginHeader,
		wiki.KindOnWord,
		wiki.KindEndHeader,
		wiki.KindEndDocument,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEventsCommandText(t *testing.T) {
	path := writeFile(t, "doc.md", "Hello\n")
	out, err := run(t, "", "events", "-f", "text", path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 || !strings.HasPrefix(lines[0], "BeginDocument") || lines[2] != `OnWord text="Hello"` {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestReplayCommand(t *testing.T) {
	in := `[{"t":"BeginDocument"},{"t":"BeginHeader","level":1},{"t":"OnWord","text":"a"},{"t":"EndHeader","level":1},{"t":"EndDocument"}]`
	path := writeFile(t, "conf.yaml", "chain:\n  listeners: [stacking, blockstate, sections]\n")
	out, err := run(t, in, "--config", path, "replay", "-f", "text")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "BeginSection") {
		t.Errorf("sections stage not applied:\n%s", out)
	}
}

func TestReplayCommandError(t *testing.T) {
	path := writeFile(t, "bad.json", `[{"t":"Nope"}]`)
	if _, err := run(t, "", "replay", path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error naming %s, got %v", path, err)
	}
}

func TestTreeCommand(t *testing.T) {
	out, err := run(t, "Hello *you*\n", "tree")
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Tag      string
		Children []struct {
			Tag      string
			Children []map[string]any
		}
	}
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Tag != "Document" || len(got.Children) != 1 || got.Children[0].Tag != "Paragraph" {
		t.Fatalf("unexpected tree:\n%s", out)
	}
	var tags []string
	for _, c := range got.Children[0].Children {
		tags = append(tags, c["tag"].(string))
	}
	if diff := cmp.Diff([]string{"Word", "Space", "FormatBlock"}, tags); diff != "" {
		t.Errorf("paragraph mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeCommandFromJSON(t *testing.T) {
	path := writeFile(t, "doc.json", `[{"t":"BeginDocument"},{"t":"OnHorizontalLine"},{"t":"EndDocument"}]`)
	out, err := run(t, "", "tree", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "tag: HorizontalLine") {
		t.Errorf("unexpected tree:\n%s", out)
	}
}
