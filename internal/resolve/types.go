package resolve

import (
	"strings"

	"driver-generator/internal/common"
)

// SegmentKind tells how one hop of an access path was resolved.
type SegmentKind int

const (
	// SegmentField is a direct ownership edge through a storage slot.
	SegmentField SegmentKind = iota
	// SegmentSearch is a tree-search expression.
	SegmentSearch
	// SegmentWrap converts the root handle into a dynamic one.
	SegmentWrap
)

// String returns a human-readable segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentField:
		return "field"
	case SegmentSearch:
		return "search"
	case SegmentWrap:
		return "wrap"
	default:
		return common.UnknownStr
	}
}

// Segment is one hop of an access path.
type Segment struct {
	Kind SegmentKind
	// Text is the slot name, search expression or wrap call.
	Text string
	// Exact is false for searches that depend on sibling order.
	Exact bool
}

// IdentifyInfo is the result of one resolution.
type IdentifyInfo struct {
	// Identify is the full access expression, e.g. "Core.Dynamic().btn".
	Identify string
	// DefaultName is the suggested member name.
	DefaultName string
	// IsPerfect is false if any segment is inexact.
	IsPerfect bool
	// Usings lists namespaces the expression needs, sorted.
	Usings []string
	// Segments is the path, root first.
	Segments []Segment
}

// Path joins the segments without the core prefix.
func (i *IdentifyInfo) Path() string {
	parts := make([]string, 0, len(i.Segments))
	for _, s := range i.Segments {
		parts = append(parts, s.Text)
	}

	return strings.Join(parts, ".")
}
