package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/growler/go-wiki"
	"github.com/growler/go-wiki/markdown"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wiki.DefaultConf.Listeners, c.Chain.Listeners); diff != "" {
		t.Errorf("listeners mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(markdown.DefaultExtensions, c.Markdown.Extensions); diff != "" {
		t.Errorf("extensions mismatch (-want +got):\n%s", diff)
	}
	if c.Output.Format != FormatJSON {
		t.Errorf("Expected %q, got %q", FormatJSON, c.Output.Format)
	}
}

func TestLoadConfigSearchPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "wikievents"), 0o755); err != nil {
		t.Fatal(err)
	}
	err := os.WriteFile(filepath.Join(dir, "wikievents", "wikievents.yaml"), []byte("output:\n  format: text\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Output.Format != FormatText {
		t.Errorf("Expected %q, got %q", FormatText, c.Output.Format)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, "conf.yaml", `
chain:
  listeners: [stacking, blockstate, sections]
markdown:
  extensions: [table]
output:
  format: text
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Chain:    ChainConfig{Listeners: []string{"stacking", "blockstate", "sections"}},
		Markdown: MarkdownConfig{Extensions: []string{"table"}},
		Output:   OutputConfig{Format: FormatText},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wiki.Stages("stacking", "blockstate", "sections"), c.Conf()); diff != "" {
		t.Errorf("conf mismatch (-want +got):\n%s", diff)
	}
	if _, err := c.Parser(); err != nil {
		t.Errorf("parser: %v", err)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WIKIEVENTS_OUTPUT_FORMAT", "text")
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Output.Format != FormatText {
		t.Errorf("Expected %q, got %q", FormatText, c.Output.Format)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	var tests = []struct {
		name, content, want string
	}{
		{"stage", "chain:\n  listeners: [stacking, nosuch]\n", "nosuch"},
		{"extension", "markdown:\n  extensions: [footnotes]\n", "footnotes"},
		{"format", "output:\n  format: xml\n", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "conf.yaml", tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing explicit config file accepted")
	}
}
