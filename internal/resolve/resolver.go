package resolve

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"driver-generator/internal/element"
	"driver-generator/internal/logger"
	"driver-generator/internal/lookup"
	"driver-generator/internal/naming"
	"driver-generator/internal/search"
)

// Config holds configuration for the resolution process.
type Config struct {
	// CorePrefix is the driver member every access expression starts from.
	CorePrefix string
	// WrapSegment is prepended when the root-most hop is a slot access.
	WrapSegment string
	// SearchUsings are the namespaces required by tree-search expressions.
	SearchUsings []string
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		CorePrefix:   "Core",
		WrapSegment:  "Dynamic()",
		SearchUsings: []string{"RM.Friendly.WPFStandardControls"},
	}
}

// Resolver resolves access paths. It holds no per-resolution state and can
// be reused.
type Resolver struct {
	config Config
	logger *zap.SugaredLogger
}

// NewResolver creates a new Resolver. A nil logger discards output.
func NewResolver(config Config, l *zap.SugaredLogger) *Resolver {
	return &Resolver{config: config, logger: logger.Named(l, "resolve")}
}

// Resolve returns the access path from root to target, or nil when target
// cannot be reached from root. taken lists member names already in use; a
// generated default name avoids them. Resolve does not reserve names, so
// calling it twice on an unchanged graph yields the same result.
func (r *Resolver) Resolve(root, target *element.Node, taken ...string) *IdentifyInfo {
	if root == nil || target == nil || !root.IsBoundary() {
		return nil
	}

	chain, ok := checkpoints(root, target)
	if !ok {
		r.logger.Debugw("root is not an ancestor of target", logger.FieldRoot, root.String(), logger.FieldTarget, target.String())
		return nil
	}

	var (
		segments  []Segment
		name      string
		usings    []string
		current   = target
		needsWrap = true
		perfect   = true
		builder   = search.NewBuilder(search.NewCache())
	)

	for _, cp := range chain {
		if slot, found := lookup.Field(cp, current); found {
			if current == target {
				name = naming.Pascal(slot)
			}

			segments = prepend(segments, Segment{Kind: SegmentField, Text: slot, Exact: true})
			r.logger.Debugw("resolved hop", logger.FieldCheckpoint, cp.String(), logger.FieldSegment, SegmentField.String(), logger.FieldSlot, slot)

			current = cp
			// A slot access still needs a dynamic receiver at its boundary.
			needsWrap = true

			continue
		}

		expr, found := builder.Search(cp, current)
		if !found {
			r.logger.Debugw("checkpoint cannot reach element", logger.FieldCheckpoint, cp.String(), logger.FieldElement, current.String())
			break
		}

		text := expr.Text
		if !needsWrap {
			// The inner hop already starts from a static handle.
			text = expr.TrimDynamic()
		}

		segments = prepend(segments, Segment{Kind: SegmentSearch, Text: text, Exact: expr.Exact})
		usings = append(usings, r.config.SearchUsings...)
		r.logger.Debugw("resolved hop", logger.FieldCheckpoint, cp.String(), logger.FieldSegment, SegmentSearch.String(),
			logger.FieldTree, expr.Tree.String(), logger.FieldExact, expr.Exact)

		current = cp
		needsWrap = false

		if !expr.Exact {
			perfect = false
		}
	}

	if current != root {
		return nil
	}

	if name == "" {
		name = naming.NewGenerator(taken...).ForNode(target)
	}

	if needsWrap {
		segments = prepend(segments, Segment{Kind: SegmentWrap, Text: r.config.WrapSegment, Exact: true})
	}

	info := &IdentifyInfo{
		DefaultName: name,
		IsPerfect:   perfect,
		Usings:      sortedUnique(usings),
		Segments:    segments,
	}
	info.Identify = joinNonEmpty(r.config.CorePrefix, info.Path())

	r.logger.Debugw("resolved", logger.FieldIdentify, info.Identify, logger.FieldPerfect, info.IsPerfect)

	return info
}

// checkpoints walks parents from target up to root and returns the
// boundaries met on the way, nearest first, ending with root.
func checkpoints(root, target *element.Node) ([]*element.Node, bool) {
	var chain []*element.Node

	seen := map[*element.Node]bool{target: true}
	for cur := element.Parent(target); cur != nil && !seen[cur]; cur = element.Parent(cur) {
		seen[cur] = true

		if cur.IsBoundary() {
			chain = append(chain, cur)
		}

		if cur == root {
			return chain, true
		}
	}

	return nil, false
}

func prepend(segments []Segment, s Segment) []Segment {
	return append([]Segment{s}, segments...)
}

func sortedUnique(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := slices.Clone(values)
	slices.Sort(out)

	return slices.Compact(out)
}

func joinNonEmpty(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(s string) bool { return s == "" }), ".")
}
