package element

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}

	return out
}

func loadFixture(t *testing.T) *Snapshot {
	t.Helper()

	s, err := LoadFile("testdata/main_window.yaml")
	require.NoError(t, err)

	return s
}

func TestLoadFile(t *testing.T) {
	s := loadFixture(t)

	main := s.MustNode("main")
	assert.Equal(t, KindWindow, main.Kind())
	assert.Equal(t, "Main", main.Text())
	assert.True(t, main.IsBoundary())
	assert.Nil(t, main.LogicalParent())
	assert.Nil(t, main.VisualParent())

	slots := main.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "okButton", slots[0].Name)
	assert.False(t, slots[0].Exported)
	assert.Same(t, s.MustNode("ok"), slots[0].Value)
	assert.True(t, slots[1].Exported)

	ok := s.MustNode("ok")
	assert.Same(t, s.MustNode("panel"), ok.LogicalParent())
	assert.Same(t, s.MustNode("panel"), ok.VisualParent())

	chrome := s.MustNode("chrome")
	assert.Nil(t, chrome.LogicalParent())
	assert.Same(t, main, chrome.VisualParent())
	assert.Same(t, main, Parent(chrome))
}

func TestDescendants_DoNotEnterBoundaries(t *testing.T) {
	s := loadFixture(t)
	main := s.MustNode("main")

	assert.Equal(t,
		[]string{"panel", "ok", "tb1", "tb2", "tb3", "hdr", "details"},
		ids(LogicalDescendants(main)))

	assert.Equal(t,
		[]string{"panel", "ok", "tb1", "tb2", "tb3", "hdr", "details", "chrome", "adorner"},
		ids(VisualDescendants(main)))

	assert.Equal(t, []string{"title", "clear"}, ids(LogicalDescendants(s.MustNode("hdr"))))
}

func TestVisualAncestors(t *testing.T) {
	s := loadFixture(t)

	assert.Equal(t, []string{"hdr", "panel", "main"}, ids(VisualAncestors(s.MustNode("title"))))
	assert.Empty(t, VisualAncestors(s.MustNode("main")))
}

func TestDescendants_CycleSafe(t *testing.T) {
	a := NewNode("a", "A", KindElement)
	b := NewNode("b", "B", KindElement)
	a.AddLogical(b)
	b.AddLogical(a)

	assert.Equal(t, []string{"b"}, ids(LogicalDescendants(a)))
}

func TestAddChild_Reparents(t *testing.T) {
	p1 := NewNode("p1", "P", KindElement)
	p2 := NewNode("p2", "P", KindElement)
	c := NewNode("c", "C", KindElement)

	p1.AddChild(c)
	p2.AddChild(c)

	assert.Empty(t, p1.LogicalChildren())
	assert.Empty(t, p1.VisualChildren())
	assert.Same(t, p2, c.LogicalParent())
	assert.Same(t, p2, c.VisualParent())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing id", "nodes:\n  - type: A\n"},
		{"duplicate id", "nodes:\n  - {id: a, type: A}\n  - {id: a, type: B}\n"},
		{"unknown kind", "nodes:\n  - {id: a, type: A, kind: dialog}\n"},
		{"unknown child", "nodes:\n  - {id: a, type: A, children: [b]}\n"},
		{"two parents", "nodes:\n  - {id: a, type: A, logical: [c]}\n  - {id: b, type: B, logical: [c]}\n  - {id: c, type: C}\n"},
		{"self child", "nodes:\n  - {id: a, type: A, visual: [a]}\n"},
		{"parent cycle", "nodes:\n  - {id: a, type: A, logical: [b]}\n  - {id: b, type: B, logical: [a]}\n"},
		{"unknown slot ref", "nodes:\n  - id: a\n    type: A\n    slots: [{name: x, ref: zz}]\n"},
		{"bad yaml", "nodes: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSnapshot), "error %v is not marked invalid", err)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("UserControl")
	require.NoError(t, err)
	assert.Equal(t, KindUserControl, k)
	assert.Equal(t, "KindUserControl", k.String())
	assert.False(t, KindElement.IsBoundary())
	assert.True(t, KindPage.IsBoundary())
	assert.False(t, KindPage.IsTopLevel())
}
