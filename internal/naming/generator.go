package naming

import (
	"slices"
	"strings"

	"driver-generator/internal/common"
	"driver-generator/internal/element"
)

// Generator hands out identifiers that are unique within one driver.
type Generator struct {
	taken map[string]struct{}
}

// NewGenerator creates a Generator with names already in use.
func NewGenerator(taken ...string) *Generator {
	g := &Generator{taken: make(map[string]struct{}, len(taken))}
	for _, name := range taken {
		g.taken[name] = struct{}{}
	}

	return g
}

// IsTaken reports whether name is in use.
func (g *Generator) IsTaken(name string) bool {
	_, ok := g.taken[name]
	return ok
}

// Take reserves name. It returns false if the name was already taken.
func (g *Generator) Take(name string) bool {
	if g.IsTaken(name) {
		return false
	}

	g.taken[name] = struct{}{}

	return true
}

// Release frees name so that it can be handed out again.
func (g *Generator) Release(name string) {
	delete(g.taken, name)
}

// Unique reserves and returns base, or base followed by the first free number.
func (g *Generator) Unique(base string) string {
	if g.Take(base) {
		return base
	}

	return NewStem(base, g.taken).Next()
}

// ForNode reserves a default member name for n: its markup name if it has
// one, otherwise its short type name.
func (g *Generator) ForNode(n *element.Node) string {
	base := n.Name()
	if base == "" {
		base = common.TypeName(n.TypeFullName())
	}

	return g.Unique(Pascal(base))
}

// Names returns the taken names in sorted order.
func (g *Generator) Names() []string {
	out := make([]string, 0, len(g.taken))
	for name := range g.taken {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}

// DriverClassName returns the default driver class name for a runtime type.
func DriverClassName(typeFullName, suffix string) string {
	return common.TypeName(typeFullName) + suffix
}

// AttachName derives the attach extension method name from a driver class
// name: the suffix is stripped and verb prepended. When the class name does
// not end in suffix, or nothing is left after stripping, verb is prepended to
// the full class name.
func AttachName(className, suffix, verb string) string {
	stem, found := strings.CutSuffix(className, suffix)
	if !found || suffix == "" || stem == "" {
		return verb + className
	}

	return verb + stem
}
