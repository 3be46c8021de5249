// Package search synthesizes tree-search lookup expressions for elements that
// a container does not own through a storage slot.
//
// Each tree (logical first, then visual) is tried in priority order:
//  1. binding: the target is the only descendant declaring a binding path (exact)
//  2. type: the target is the only descendant of its type (exact)
//  3. position: the target's index among descendants of its type (best effort)
//
// An exact expression from either tree wins over a positional one.
package search
