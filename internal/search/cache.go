package search

import "driver-generator/internal/element"

// bindingContext identifies one enumeration: a container and the tree walked
// beneath it.
type bindingContext struct {
	container *element.Node
	tree      element.Tree
}

// Cache holds binding indexes computed during one resolution. Sibling
// lookups below the same container reuse the index, so identical elements
// always resolve to identical expressions within a run. A Cache is not safe
// for concurrent use and should be discarded after the resolution.
type Cache struct {
	bindings map[bindingContext]map[string][]*element.Node
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{bindings: make(map[bindingContext]map[string][]*element.Node)}
}

// size returns the number of cached binding contexts.
func (c *Cache) size() int {
	return len(c.bindings)
}

// bindingIndex returns binding path -> declaring descendants for the context,
// building it from descendants on first use.
func (c *Cache) bindingIndex(ctx bindingContext, descendants []*element.Node) map[string][]*element.Node {
	if idx, ok := c.bindings[ctx]; ok {
		return idx
	}

	idx := make(map[string][]*element.Node)
	for _, d := range descendants {
		for _, p := range d.Bindings() {
			idx[p] = append(idx[p], d)
		}
	}

	c.bindings[ctx] = idx

	return idx
}
