package resolve

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-generator/internal/element"
)

func loadFixture(t *testing.T) *element.Snapshot {
	t.Helper()

	s, err := element.LoadFile("testdata/main_window.yaml")
	require.NoError(t, err)

	return s
}

func segmentKinds(info *IdentifyInfo) []SegmentKind {
	out := make([]SegmentKind, 0, len(info.Segments))
	for _, s := range info.Segments {
		out = append(out, s.Kind)
	}

	return out
}

func TestResolve_DirectSlot(t *testing.T) {
	w := element.NewNode("w", "Demo.W", element.KindWindow)
	btn := element.NewNode("b", "System.Windows.Controls.Button", element.KindElement)
	w.AddChild(btn)
	w.SetSlot("btn", false, btn)

	info := NewResolver(DefaultConfig(), nil).Resolve(w, btn)
	require.NotNil(t, info)

	assert.Equal(t, "Core.Dynamic().btn", info.Identify)
	assert.Equal(t, "Btn", info.DefaultName)
	assert.True(t, info.IsPerfect)
	assert.Empty(t, info.Usings)
	assert.Equal(t, []Segment{
		{Kind: SegmentWrap, Text: "Dynamic()", Exact: true},
		{Kind: SegmentField, Text: "btn", Exact: true},
	}, info.Segments, spew.Sdump(info.Segments))
}

func TestResolve_AmbiguousTextBoxes(t *testing.T) {
	w := element.NewNode("w", "Demo.W", element.KindWindow)

	var boxes []*element.Node
	for _, id := range []string{"a", "b", "c"} {
		tb := element.NewNode(id, "System.Windows.Controls.TextBox", element.KindElement)
		w.AddChild(tb)
		boxes = append(boxes, tb)
	}

	info := NewResolver(DefaultConfig(), nil).Resolve(w, boxes[1])
	require.NotNil(t, info)

	require.Len(t, info.Segments, 1, spew.Sdump(info.Segments))
	assert.Equal(t, SegmentSearch, info.Segments[0].Kind)
	assert.False(t, info.Segments[0].Exact)
	assert.False(t, info.IsPerfect)
	assert.Equal(t, `Core.LogicalTree().ByType("System.Windows.Controls.TextBox")[1].Dynamic()`, info.Identify)
	assert.Equal(t, "TextBox", info.DefaultName)
	assert.Equal(t, []string{"RM.Friendly.WPFStandardControls"}, info.Usings)
}

func TestResolve_Fixture(t *testing.T) {
	s := loadFixture(t)
	r := NewResolver(DefaultConfig(), nil)

	tests := []struct {
		target   string
		identify string
		name     string
		perfect  bool
		kinds    []SegmentKind
	}{
		{
			target:   "ok",
			identify: "Core.Dynamic().okButton",
			name:     "OkButton",
			perfect:  true,
			kinds:    []SegmentKind{SegmentWrap, SegmentField},
		},
		{
			target:   "tb3",
			identify: `Core.LogicalTree().ByType("System.Windows.Controls.TextBox")[2].Dynamic()`,
			name:     "TextBox",
			perfect:  false,
			kinds:    []SegmentKind{SegmentSearch},
		},
		{
			target:   "clear",
			identify: "Core.Dynamic().Header.clearButton",
			name:     "ClearButton",
			perfect:  true,
			kinds:    []SegmentKind{SegmentWrap, SegmentField, SegmentField},
		},
		{
			target:   "title",
			identify: `Core.Dynamic().Header.LogicalTree().ByBinding("Title").Single().Dynamic()`,
			name:     "TextBlock",
			perfect:  true,
			kinds:    []SegmentKind{SegmentWrap, SegmentField, SegmentSearch},
		},
		{
			target: "status",
			identify: `Core.LogicalTree().ByType("Demo.DetailsControl").Single()` +
				`.LogicalTree().ByType("System.Windows.Controls.Label").Single().Dynamic()`,
			name:    "StatusLabel",
			perfect: true,
			kinds:   []SegmentKind{SegmentSearch, SegmentSearch},
		},
		{
			target:   "notes",
			identify: `Core.LogicalTree().ByType("Demo.DetailsControl").Single().LogicalTree().ByBinding("Notes").Single().Dynamic()`,
			name:     "TextBox",
			perfect:  true,
			kinds:    []SegmentKind{SegmentSearch, SegmentSearch},
		},
		{
			target:   "adorner",
			identify: `Core.VisualTree().ByType("System.Windows.Documents.AdornerDecorator").Single().Dynamic()`,
			name:     "AdornerDecorator",
			perfect:  true,
			kinds:    []SegmentKind{SegmentSearch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			info := r.Resolve(s.MustNode("main"), s.MustNode(tt.target))
			require.NotNil(t, info)

			assert.Equal(t, tt.identify, info.Identify)
			assert.Equal(t, tt.name, info.DefaultName)
			assert.Equal(t, tt.perfect, info.IsPerfect)
			assert.Equal(t, tt.kinds, segmentKinds(info), spew.Sdump(info.Segments))
		})
	}
}

func TestResolve_NestedRoot(t *testing.T) {
	s := loadFixture(t)

	info := NewResolver(DefaultConfig(), nil).Resolve(s.MustNode("hdr"), s.MustNode("clear"))
	require.NotNil(t, info)
	assert.Equal(t, "Core.Dynamic().clearButton", info.Identify)
}

func TestResolve_Unreachable(t *testing.T) {
	s := loadFixture(t)
	r := NewResolver(DefaultConfig(), nil)

	assert.Nil(t, r.Resolve(s.MustNode("hdr"), s.MustNode("ok")), "target outside the root")
	assert.Nil(t, r.Resolve(s.MustNode("main"), s.MustNode("main")), "root is not its own descendant")
	assert.Nil(t, r.Resolve(s.MustNode("panel"), s.MustNode("ok")), "root must be a boundary")
	assert.Nil(t, r.Resolve(s.MustNode("main"), element.NewNode("x", "X", element.KindElement)), "detached target")
	assert.Nil(t, r.Resolve(nil, s.MustNode("ok")))
}

func TestResolve_Idempotent(t *testing.T) {
	s := loadFixture(t)
	r := NewResolver(DefaultConfig(), nil)

	for _, id := range []string{"ok", "tb1", "clear", "title", "status", "adorner"} {
		first := r.Resolve(s.MustNode("main"), s.MustNode(id))
		second := r.Resolve(s.MustNode("main"), s.MustNode(id))

		require.NotNil(t, first, id)
		assert.Equal(t, first, second, id)
	}
}

func TestResolve_DefaultNameAvoidsTaken(t *testing.T) {
	s := loadFixture(t)

	info := NewResolver(DefaultConfig(), nil).Resolve(s.MustNode("main"), s.MustNode("tb1"), "TextBox", "TextBox1")
	require.NotNil(t, info)
	assert.Equal(t, "TextBox2", info.DefaultName)
}

func TestResolve_FieldThenAmbiguousSearchIsImperfect(t *testing.T) {
	w := element.NewNode("w", "Demo.W", element.KindWindow)
	uc1 := element.NewNode("uc1", "Demo.Panel", element.KindUserControl)
	uc2 := element.NewNode("uc2", "Demo.Panel", element.KindUserControl)
	btn := element.NewNode("btn", "System.Windows.Controls.Button", element.KindElement)

	w.AddChild(uc1).AddChild(uc2)
	uc2.AddChild(btn)
	uc2.SetSlot("btn", false, btn)

	info := NewResolver(DefaultConfig(), nil).Resolve(w, btn)
	require.NotNil(t, info)

	assert.False(t, info.IsPerfect)
	assert.Equal(t, `Core.LogicalTree().ByType("Demo.Panel")[1].Dynamic().btn`, info.Identify)
	assert.Equal(t, "Btn", info.DefaultName)
}

func TestResolve_AdjacentSearchesUnwrapOnce(t *testing.T) {
	w := element.NewNode("w", "Demo.W", element.KindWindow)
	outer := element.NewNode("outer", "Demo.Outer", element.KindUserControl)
	inner := element.NewNode("inner", "Demo.Inner", element.KindUserControl)
	tb := element.NewNode("tb", "System.Windows.Controls.TextBox", element.KindElement)

	w.AddChild(outer)
	outer.AddChild(inner)
	inner.AddChild(tb)

	info := NewResolver(DefaultConfig(), nil).Resolve(w, tb)
	require.NotNil(t, info)

	assert.Equal(t,
		`Core.LogicalTree().ByType("Demo.Outer").Single()`+
			`.LogicalTree().ByType("Demo.Inner").Single()`+
			`.LogicalTree().ByType("System.Windows.Controls.TextBox").Single().Dynamic()`,
		info.Identify)
	assert.True(t, info.IsPerfect)
}

type liveWindow struct {
	okButton *liveButton
}

type liveButton struct{ caption string }

func TestResolve_LiveObjectFields(t *testing.T) {
	btn := &liveButton{caption: "OK"}
	win := &liveWindow{okButton: btn}

	w := element.NewNode("w", "Demo.W", element.KindWindow).WithObject(win)
	b := element.NewNode("b", "System.Windows.Controls.Button", element.KindElement).WithObject(btn)
	w.AddChild(b)

	info := NewResolver(DefaultConfig(), nil).Resolve(w, b)
	require.NotNil(t, info)
	assert.Equal(t, "Core.Dynamic().okButton", info.Identify)
	assert.Equal(t, "OkButton", info.DefaultName)
}

func TestSegmentKind_String(t *testing.T) {
	assert.Equal(t, "field", SegmentField.String())
	assert.Equal(t, "search", SegmentSearch.String())
	assert.Equal(t, "wrap", SegmentWrap.String())
	assert.Equal(t, "unknown", SegmentKind(42).String())
}
