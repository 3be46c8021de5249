package element

import "slices"

// Slot is a named storage slot of a node that holds a reference to another
// node. Exported distinguishes public members from internal storage.
type Slot struct {
	Name     string
	Exported bool
	Value    *Node
}

// Node is a handle to one element of the captured GUI.
type Node struct {
	id           string
	typeFullName string
	kind         Kind
	text         string
	name         string
	bindings     []string
	slots        []Slot
	object       any

	logicalParent *Node
	visualParent  *Node
	logical       []*Node
	visual        []*Node
}

// NewNode creates a detached node.
func NewNode(id, typeFullName string, kind Kind) *Node {
	return &Node{
		id:           id,
		typeFullName: typeFullName,
		kind:         kind,
	}
}

// ID returns the snapshot identifier of the node.
func (n *Node) ID() string { return n.id }

// TypeFullName returns the dotted runtime type name, e.g. "System.Windows.Controls.Button".
func (n *Node) TypeFullName() string { return n.typeFullName }

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// IsBoundary reports whether the node can serve as a resolution root.
func (n *Node) IsBoundary() bool { return n != nil && n.kind.IsBoundary() }

// Text returns the display text (window title for windows).
func (n *Node) Text() string { return n.text }

// Name returns the markup name of the element, if any.
func (n *Node) Name() string { return n.name }

// Bindings returns the data-binding paths declared on the node.
func (n *Node) Bindings() []string { return slices.Clone(n.bindings) }

// Slots returns the node's storage slots in declaration order.
func (n *Node) Slots() []Slot { return slices.Clone(n.slots) }

// Object returns the live value wrapped by the node, or nil.
func (n *Node) Object() any { return n.object }

// LogicalParent returns the owner of the node in the logical tree.
func (n *Node) LogicalParent() *Node { return n.logicalParent }

// VisualParent returns the container of the node in the visual tree.
func (n *Node) VisualParent() *Node { return n.visualParent }

// LogicalChildren returns the node's logical children in order.
func (n *Node) LogicalChildren() []*Node { return slices.Clone(n.logical) }

// VisualChildren returns the node's visual children in order.
func (n *Node) VisualChildren() []*Node { return slices.Clone(n.visual) }

// String returns a short description used in logs and diagnostics.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	if n.name != "" {
		return n.typeFullName + "#" + n.name
	}

	return n.typeFullName + "@" + n.id
}

// --- builder methods, used by the host while capturing ---

// WithText sets the display text.
func (n *Node) WithText(text string) *Node {
	n.text = text
	return n
}

// WithName sets the markup name.
func (n *Node) WithName(name string) *Node {
	n.name = name
	return n
}

// WithBindings appends binding paths.
func (n *Node) WithBindings(paths ...string) *Node {
	n.bindings = append(n.bindings, paths...)
	return n
}

// WithObject attaches the live value the node stands for.
func (n *Node) WithObject(obj any) *Node {
	n.object = obj
	return n
}

// SetSlot appends a storage slot referencing value.
func (n *Node) SetSlot(name string, exported bool, value *Node) *Node {
	n.slots = append(n.slots, Slot{Name: name, Exported: exported, Value: value})
	return n
}

// AddLogical appends child to the logical tree under n.
func (n *Node) AddLogical(child *Node) *Node {
	if old := child.logicalParent; old != nil {
		old.logical = slices.DeleteFunc(old.logical, func(c *Node) bool { return c == child })
	}

	child.logicalParent = n
	n.logical = append(n.logical, child)

	return n
}

// AddVisual appends child to the visual tree under n.
func (n *Node) AddVisual(child *Node) *Node {
	if old := child.visualParent; old != nil {
		old.visual = slices.DeleteFunc(old.visual, func(c *Node) bool { return c == child })
	}

	child.visualParent = n
	n.visual = append(n.visual, child)

	return n
}

// AddChild appends child to both trees under n.
func (n *Node) AddChild(child *Node) *Node {
	return n.AddLogical(child).AddVisual(child)
}
