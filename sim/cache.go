// Implements the ContentCache, which records the tick at which each content name
// first became available. Entries are created once and never evicted or updated.

package sim

import "sort"

// ContentCache maps a content name to the tick of its first successful fetch.
type ContentCache struct {
	entries map[string]int64
}

// NewContentCache creates an empty cache.
func NewContentCache() *ContentCache {
	return &ContentCache{entries: make(map[string]int64)}
}

// Lookup returns the availability tick for name. Pure read.
func (c *ContentCache) Lookup(name string) (int64, bool) {
	tick, ok := c.entries[name]
	return tick, ok
}

// Insert records name as available at tick if it is not already present.
// Inserting a present name is a no-op (first fetch wins). Reports whether
// an entry was created.
func (c *ContentCache) Insert(name string, tick int64) bool {
	if _, ok := c.entries[name]; ok {
		return false
	}
	c.entries[name] = tick
	return true
}

// Len returns the number of cached content names.
func (c *ContentCache) Len() int {
	return len(c.entries)
}

// Names returns the cached content names in lexical order.
func (c *ContentCache) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the cache contents for reporting.
func (c *ContentCache) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(c.entries))
	for name, tick := range c.entries {
		out[name] = tick
	}
	return out
}
