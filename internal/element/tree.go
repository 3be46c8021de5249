package element

// Tree selects one of the two parallel trees.
type Tree int

const (
	// TreeLogical is the composition (ownership) tree.
	TreeLogical Tree = iota
	// TreeVisual is the rendering (containment) tree.
	TreeVisual
)

// Trees lists both trees in query priority order.
var Trees = []Tree{TreeLogical, TreeVisual}

// String returns "logical" or "visual".
func (t Tree) String() string {
	if t == TreeVisual {
		return "visual"
	}

	return "logical"
}

// Children returns the children of n in tree t.
func (t Tree) Children(n *Node) []*Node {
	if t == TreeVisual {
		return n.visual
	}

	return n.logical
}

// Parent returns the parent of n in tree t.
func (t Tree) Parent(n *Node) *Node {
	if t == TreeVisual {
		return n.visualParent
	}

	return n.logicalParent
}

// Parent returns the logical parent of n, or its visual parent when it has
// no logical one.
func Parent(n *Node) *Node {
	if n.logicalParent != nil {
		return n.logicalParent
	}

	return n.visualParent
}

// Descendants enumerates the descendants of root in tree t, depth-first in
// pre-order. root itself is excluded. Nested boundaries are included but not
// entered: their content belongs to them, not to root.
func Descendants(root *Node, t Tree) []*Node {
	var out []*Node

	seen := map[*Node]bool{root: true}

	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range t.Children(n) {
			if seen[c] {
				continue
			}

			seen[c] = true
			out = append(out, c)

			if c.IsBoundary() {
				continue
			}

			walk(c)
		}
	}
	walk(root)

	return out
}

// LogicalDescendants is Descendants over the logical tree.
func LogicalDescendants(root *Node) []*Node {
	return Descendants(root, TreeLogical)
}

// VisualDescendants is Descendants over the visual tree.
func VisualDescendants(root *Node) []*Node {
	return Descendants(root, TreeVisual)
}

// VisualAncestors returns the visual ancestors of n, nearest first.
func VisualAncestors(n *Node) []*Node {
	var out []*Node

	seen := map[*Node]bool{n: true}
	for p := n.visualParent; p != nil && !seen[p]; p = p.visualParent {
		seen[p] = true
		out = append(out, p)
	}

	return out
}
