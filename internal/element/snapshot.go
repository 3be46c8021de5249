package element

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSnapshot marks every error produced while building a snapshot.
var ErrInvalidSnapshot = errors.New("invalid element snapshot")

// Snapshot is a captured dual-tree element graph.
type Snapshot struct {
	nodes []*Node
	byID  map[string]*Node
}

// Node returns the node with the given ID.
func (s *Snapshot) Node(id string) (*Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// MustNode returns the node with the given ID and panics if it is missing.
// Intended for fixtures.
func (s *Snapshot) MustNode(id string) *Node {
	n, ok := s.byID[id]
	if !ok {
		panic("element: no node " + id)
	}

	return n
}

// snapshotFile is the YAML layout of a snapshot.
//
//	version: "1"
//	nodes:
//	  - id: main
//	    type: Demo.MainWindow
//	    kind: window
//	    text: Main
//	    slots:
//	      - {name: okButton, ref: ok}
//	    children: [panel]   # both trees
//	    logical: [popup]    # logical tree only
//	    visual: [chrome]    # visual tree only
type snapshotFile struct {
	Version string      `yaml:"version,omitempty"`
	Nodes   []nodeEntry `yaml:"nodes"`
}

type nodeEntry struct {
	ID       string      `yaml:"id"`
	Type     string      `yaml:"type"`
	Kind     string      `yaml:"kind,omitempty"`
	Text     string      `yaml:"text,omitempty"`
	Name     string      `yaml:"name,omitempty"`
	Bindings []string    `yaml:"bindings,omitempty"`
	Slots    []slotEntry `yaml:"slots,omitempty"`
	Children []string    `yaml:"children,omitempty"`
	Logical  []string    `yaml:"logical,omitempty"`
	Visual   []string    `yaml:"visual,omitempty"`
}

type slotEntry struct {
	Name     string `yaml:"name"`
	Ref      string `yaml:"ref"`
	Exported bool   `yaml:"exported,omitempty"`
}

// LoadFile loads and parses a YAML snapshot from the given path.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a Snapshot.
func Parse(data []byte) (*Snapshot, error) {
	var f snapshotFile

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to parse snapshot YAML"), ErrInvalidSnapshot)
	}

	return build(&f)
}

func build(f *snapshotFile) (*Snapshot, error) {
	s := &Snapshot{byID: make(map[string]*Node, len(f.Nodes))}

	// First pass: create nodes so that references may point forward.
	for _, e := range f.Nodes {
		if e.ID == "" {
			return nil, invalid(errors.New("node without id"))
		}

		if _, dup := s.byID[e.ID]; dup {
			return nil, invalid(errors.Newf("duplicate node id %q", e.ID))
		}

		kind, err := ParseKind(e.Kind)
		if err != nil {
			return nil, invalid(errors.Wrapf(err, "node %q", e.ID))
		}

		n := NewNode(e.ID, e.Type, kind).WithText(e.Text).WithName(e.Name).WithBindings(e.Bindings...)
		s.nodes = append(s.nodes, n)
		s.byID[e.ID] = n
	}

	// Second pass: link trees and slots.
	for _, e := range f.Nodes {
		n := s.byID[e.ID]

		link := func(ids []string, t Tree) error {
			for _, id := range ids {
				c, ok := s.byID[id]
				if !ok {
					return errors.Newf("node %q: unknown %s child %q", e.ID, t, id)
				}

				if p := t.Parent(c); p != nil {
					return errors.Newf("node %q: %s child %q already belongs to %q", e.ID, t, id, p.id)
				}

				if c == n {
					return errors.Newf("node %q is its own %s child", e.ID, t)
				}

				if t == TreeVisual {
					n.AddVisual(c)
				} else {
					n.AddLogical(c)
				}
			}

			return nil
		}

		if err := link(e.Children, TreeLogical); err != nil {
			return nil, invalid(err)
		}

		if err := link(e.Children, TreeVisual); err != nil {
			return nil, invalid(err)
		}

		if err := link(e.Logical, TreeLogical); err != nil {
			return nil, invalid(err)
		}

		if err := link(e.Visual, TreeVisual); err != nil {
			return nil, invalid(err)
		}

		for _, sl := range e.Slots {
			v, ok := s.byID[sl.Ref]
			if !ok {
				return nil, invalid(errors.Newf("node %q: slot %q references unknown node %q", e.ID, sl.Name, sl.Ref))
			}

			n.SetSlot(sl.Name, sl.Exported, v)
		}
	}

	if err := s.checkAcyclic(); err != nil {
		return nil, invalid(err)
	}

	return s, nil
}

// checkAcyclic fails when following parents in either tree never ends.
func (s *Snapshot) checkAcyclic() error {
	for _, n := range s.nodes {
		for _, t := range []Tree{TreeLogical, TreeVisual} {
			steps := 0
			for p := t.Parent(n); p != nil; p = t.Parent(p) {
				if steps++; steps > len(s.nodes) {
					return errors.Newf("node %q: %s parents form a cycle", n.id, t)
				}
			}
		}
	}

	return nil
}

func invalid(err error) error {
	return errors.Mark(err, ErrInvalidSnapshot)
}
