package wiki

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
)

// A configuration of the listener chain events are run through.
type Conf struct {
	Listeners []string // Names of chain stages, in chain order
}

// Stage names understood by Conf.
const (
	StageGroupStacking = "stacking"
	StageMetaData      = "metadata"
	StageBlockState    = "blockstate"
	StageEmptyBlock    = "emptyblock"
	StageNewLines      = "newlines"
	StageGroupState    = "groups"
	StageSections      = "sections"
)

var stages = map[string]func() Listener{
	StageGroupStacking: func() Listener { return NewGroupStackingListener() },
	StageMetaData:      func() Listener { return NewMetaDataListener() },
	StageBlockState:    func() Listener { return NewBlockStateListener() },
	StageEmptyBlock:    func() Listener { return NewEmptyBlockListener() },
	StageNewLines:      func() Listener { return NewConsecutiveNewLineListener() },
	StageGroupState:    func() Listener { return NewGroupStateListener() },
	StageSections:      func() Listener { return NewSectionGeneratorListener() },
}

// StageNames returns the known stage names, sorted.
func StageNames() []string {
	names := make([]string, 0, len(stages))
	for n := range stages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// The chain used by renderers: state trackers behind group stacking.
var DefaultConf = Conf{
	Listeners: []string{
		StageGroupStacking,
		StageGroupState,
		StageMetaData,
		StageBlockState,
		StageEmptyBlock,
		StageNewLines,
	},
}

// Makes a new Conf with the given stages.
func Stages(names ...string) Conf {
	return Conf{Listeners: names}
}

// Returns a Conf with the stage appended, unless it is already present.
func (c Conf) WithListener(name string) Conf {
	if slices.Contains(c.Listeners, name) {
		return c
	}
	c.Listeners = append(slices.Clip(c.Listeners), name)
	return c
}

// Returns a Conf without the stage.
func (c Conf) WithoutListener(name string) Conf {
	c.Listeners = slices.DeleteFunc(slices.Clone(c.Listeners), func(n string) bool { return n == name })
	return c
}

// Chain builds a chain of the configured stages followed by target. A nil
// target leaves the last stage as the end of the chain.
func (c Conf) Chain(target Listener) (*ListenerChain, error) {
	chain := NewListenerChain()
	for _, name := range c.Listeners {
		mk, ok := stages[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownListener, name)
		}
		chain.AddListener(mk())
	}
	if target != nil {
		chain.AddListener(target)
	}
	return chain, nil
}

// Pipe reads a JSON event stream from r and runs it through the chain of
// conf into target.
func Pipe(r io.Reader, conf Conf, target Listener) error {
	chain, err := conf.Chain(target)
	if err != nil {
		return err
	}
	return ReadEvents(r, chain.Entry())
}

func PipeFile(f string, conf Conf, target Listener) error {
	fh, err := os.Open(f)
	if err != nil {
		return err
	}
	defer fh.Close()
	if err := Pipe(fh, conf, target); err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}
	return nil
}

// LoadFrom builds a document from a JSON event stream run through the
// chain of conf.
func LoadFrom(r io.Reader, conf Conf) (*Document, error) {
	g := NewGenerator()
	if err := Pipe(r, conf, g); err != nil {
		return nil, err
	}
	return g.Document(), nil
}

func LoadFile(f string, conf Conf) (*Document, error) {
	g := NewGenerator()
	if err := PipeFile(f, conf, g); err != nil {
		return nil, err
	}
	return g.Document(), nil
}

// StoreTo writes the events of the document, run through the chain of
// conf, as a JSON event stream.
func (d *Document) StoreTo(w io.Writer, conf Conf) error {
	out := NewJSONWriter(w)
	chain, err := conf.Chain(out)
	if err != nil {
		return err
	}
	d.Traverse(chain.Entry())
	return out.Close()
}

func (d *Document) StoreFile(f string, conf Conf) error {
	fh, err := os.Create(f)
	if err != nil {
		return err
	}
	if err := d.StoreTo(fh, conf); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
