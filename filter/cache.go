package filter

import (
	"container/list"
	"sync"
)

// filterCache holds the most recently compiled filters, keyed by their
// trimmed expression text.
type filterCache struct {
	limit  int
	recent *list.List // of CompiledFilter, most recent first
	byExpr map[string]*list.Element
	mu     sync.Mutex
}

func newFilterCache(limit int) *filterCache {
	return &filterCache{
		limit:  limit,
		recent: list.New(),
		byExpr: make(map[string]*list.Element, limit),
	}
}

// lookup returns the cached filter for expression and marks it recently used
func (c *filterCache) lookup(expression string) (CompiledFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.byExpr[expression]
	if !ok {
		return nil, false
	}
	c.recent.MoveToFront(elem)
	return elem.Value.(CompiledFilter), true
}

// store caches f under its expression. A concurrent compile of the same
// expression keeps the filter stored first.
func (c *filterCache) store(f CompiledFilter) CompiledFilter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.byExpr[f.Expression()]; ok {
		c.recent.MoveToFront(elem)
		return elem.Value.(CompiledFilter)
	}

	c.byExpr[f.Expression()] = c.recent.PushFront(f)
	for c.recent.Len() > c.limit {
		oldest := c.recent.Remove(c.recent.Back()).(CompiledFilter)
		delete(c.byExpr, oldest.Expression())
	}
	return f
}
