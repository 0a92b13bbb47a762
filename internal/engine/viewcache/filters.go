package viewcache

import (
	"strconv"
	"sync/atomic"
)

// FilterCounter numbers untitled filters. It is never reset; share one instance
// between caches that must not hand out the same name.
type FilterCounter struct {
	n atomic.Uint64
}

// NewFilterCounter creates a counter whose first name is "Untitled Filter 1".
func NewFilterCounter() *FilterCounter {
	return &FilterCounter{}
}

// Next returns the next untitled filter name.
func (f *FilterCounter) Next() string {
	return "Untitled Filter " + strconv.FormatUint(f.n.Add(1), 10)
}

// WithFilterCounter makes the cache draw untitled filter names from fc.
func (c *Cache) WithFilterCounter(fc *FilterCounter) *Cache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = fc
	return c
}

// NextUntitledFilterName returns the next untitled filter name.
func (c *Cache) NextUntitledFilterName() string {
	c.mu.Lock()
	fc := c.filters
	c.mu.Unlock()
	return fc.Next()
}
