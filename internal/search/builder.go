package search

import (
	"fmt"
	"slices"
	"strings"

	"driver-generator/internal/common"
	"driver-generator/internal/element"
)

// DynamicSuffix converts the located object into a dynamic handle.
const DynamicSuffix = ".Dynamic()"

// Expression is a synthesized lookup expression relative to a container.
type Expression struct {
	// Text is the expression, e.g. `LogicalTree().ByType("System.Windows.Controls.Button").Single().Dynamic()`.
	Text string
	// Exact is false when the expression depends on sibling order.
	Exact bool
	// Tree is the tree the expression walks.
	Tree element.Tree
}

// TrimDynamic returns the expression text without a trailing DynamicSuffix.
func (e Expression) TrimDynamic() string {
	return strings.TrimSuffix(e.Text, DynamicSuffix)
}

// Builder synthesizes expressions. A Builder shares its Cache across calls.
type Builder struct {
	cache *Cache
}

// NewBuilder creates a Builder backed by cache. A nil cache gets a fresh one.
func NewBuilder(cache *Cache) *Builder {
	if cache == nil {
		cache = NewCache()
	}

	return &Builder{cache: cache}
}

// Search returns the best expression locating target below container.
// It reports false when target is in neither tree.
func (b *Builder) Search(container, target *element.Node) (Expression, bool) {
	var (
		fallback Expression
		found    bool
	)

	for _, tree := range element.Trees {
		descendants := element.Descendants(container, tree)
		if !slices.Contains(descendants, target) {
			continue
		}

		if expr, ok := b.byBinding(bindingContext{container: container, tree: tree}, descendants, target); ok {
			return expr, true
		}

		expr := byType(tree, descendants, target)
		if expr.Exact {
			return expr, true
		}

		if !found {
			fallback, found = expr, true
		}
	}

	return fallback, found
}

func (b *Builder) byBinding(ctx bindingContext, descendants []*element.Node, target *element.Node) (Expression, bool) {
	paths := target.Bindings()
	if common.IsEmpty(paths) {
		return Expression{}, false
	}

	idx := b.cache.bindingIndex(ctx, descendants)
	for _, p := range paths {
		if nodes := idx[p]; common.IsSingle(nodes) && nodes[0] == target {
			return Expression{
				Text:  fmt.Sprintf("%s.ByBinding(%s).Single()%s", accessor(ctx.tree), common.Literal(p), DynamicSuffix),
				Exact: true,
				Tree:  ctx.tree,
			}, true
		}
	}

	return Expression{}, false
}

func byType(tree element.Tree, descendants []*element.Node, target *element.Node) Expression {
	index, count := -1, 0

	for _, d := range descendants {
		if d.TypeFullName() != target.TypeFullName() {
			continue
		}

		if d == target {
			index = count
		}

		count++
	}

	byType := fmt.Sprintf("%s.ByType(%s)", accessor(tree), common.Literal(target.TypeFullName()))
	if count == 1 {
		return Expression{Text: byType + ".Single()" + DynamicSuffix, Exact: true, Tree: tree}
	}

	return Expression{Text: fmt.Sprintf("%s[%d]%s", byType, index, DynamicSuffix), Exact: false, Tree: tree}
}

func accessor(tree element.Tree) string {
	if tree == element.TreeVisual {
		return "VisualTree()"
	}

	return "LogicalTree()"
}
