package main

import (
	"fmt"
	"strconv"

	"github.com/growler/go-wiki"
	"gopkg.in/yaml.v3"
)

// DumpBlock renders a block tree as a YAML mapping:
//
//	tag: Header
//	level: 1
//	children:
//	  - tag: Word
//	    text: Title
func DumpBlock(b wiki.Block) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, v *yaml.Node) {
		n.Content = append(n.Content, str(key), v)
	}
	add("tag", str(b.Tag().String()))
	for _, f := range fields(b) {
		add(f.Key, f.Value)
	}
	if p := b.Params(); len(p) > 0 {
		add("params", dumpParams(p))
	}
	if c := b.Children(); len(c) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, child := range c {
			seq.Content = append(seq.Content, DumpBlock(child))
		}
		add("children", seq)
	}
	return n
}

type field struct {
	Key   string
	Value *yaml.Node
}

func fields(b wiki.Block) []field {
	switch b := b.(type) {
	case *wiki.Document:
		return meta(b.Meta)
	case *wiki.MetaDataBlock:
		return meta(b.Meta)
	case *wiki.FormatBlock:
		return []field{{"format", str(b.Format.String())}}
	case *wiki.MacroMarker:
		return macro(b.Name, b.Content, b.Inline)
	case *wiki.Macro:
		return macro(b.Name, b.Content, b.Inline)
	case *wiki.Header:
		f := []field{{"level", num(int(b.Level))}}
		if b.ID != "" {
			f = append(f, field{"id", str(b.ID)})
		}
		return f
	case *wiki.Link:
		f := []field{{"ref", dumpReference(b.Reference)}}
		if b.Freestanding {
			f = append(f, field{"freestanding", boolean(true)})
		}
		return f
	case *wiki.Image:
		f := []field{{"ref", dumpReference(b.Reference)}}
		if b.Freestanding {
			f = append(f, field{"freestanding", boolean(true)})
		}
		if b.ID != "" {
			f = append(f, field{"id", str(b.ID)})
		}
		return f
	case *wiki.Word:
		return []field{{"text", str(b.Text)}}
	case *wiki.SpecialSymbol:
		return []field{{"symbol", str(string(b.Symbol))}}
	case *wiki.ID:
		return []field{{"name", str(b.Name)}}
	case *wiki.EmptyLines:
		return []field{{"count", num(b.Count)}}
	case *wiki.Verbatim:
		f := []field{{"content", str(b.Content)}}
		if b.Inline {
			f = append(f, field{"inline", boolean(true)})
		}
		return f
	case *wiki.Raw:
		return []field{{"syntax", str(b.Syntax.String())}, {"text", str(b.Text)}}
	}
	return nil
}

func macro(name, content string, inline bool) []field {
	f := []field{{"name", str(name)}}
	if content != "" {
		f = append(f, field{"content", str(content)})
	}
	if inline {
		f = append(f, field{"inline", boolean(true)})
	}
	return f
}

func meta(m wiki.MetaData) []field {
	if len(m) == 0 {
		return nil
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m {
		var v *yaml.Node
		switch x := e.Value.(type) {
		case bool:
			v = boolean(x)
		case int:
			v = num(x)
		case int64:
			v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(x, 10)}
		default:
			v = str(fmt.Sprint(x))
		}
		n.Content = append(n.Content, str(e.Key), v)
	}
	return []field{{"meta", n}}
}

func dumpParams(p wiki.Params) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range p {
		n.Content = append(n.Content, str(kv.Key), str(kv.Value))
	}
	return n
}

func dumpReference(r wiki.ResourceReference) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content, str("type"), str(string(r.Type)), str("reference"), str(r.Reference))
	if len(r.Params) > 0 {
		n.Content = append(n.Content, str("params"), dumpParams(r.Params))
	}
	return n
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func num(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

func boolean(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}
