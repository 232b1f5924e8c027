// Package cache provides the in-memory page store behind each repository.
// Entries never expire and are never evicted; a populated key keeps its
// value for the life of the process.
package cache

import (
	"slices"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a typed key/value store safe for concurrent use.
// Each repository owns one, so a Cache only ever holds one value type.
type Cache[V any] struct {
	store *gocache.Cache
}

// New creates an empty cache with no expiration and no cleanup janitor.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the cache.
func (c *Cache[V]) Get(key string) (V, bool) {
	raw, found := c.store.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, ok := raw.(V)
	return v, ok
}

// Set stores a value, overwriting any existing entry for key.
func (c *Cache[V]) Set(key string, value V) {
	c.store.Set(key, value, gocache.NoExpiration)
}

// ItemCount returns the number of items in the cache.
func (c *Cache[V]) ItemCount() int {
	return c.store.ItemCount()
}

// Keys returns the populated keys in no particular order.
func (c *Cache[V]) Keys() []string {
	items := c.store.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns cache statistics.
type Stats struct {
	ItemCount int      `json:"item_count" yaml:"item_count"`
	Keys      []string `json:"keys" yaml:"keys"`
}

// GetStats returns current cache statistics. Keys are sorted.
func (c *Cache[V]) GetStats() Stats {
	keys := c.Keys()
	slices.Sort(keys)
	return Stats{
		ItemCount: len(keys),
		Keys:      keys,
	}
}
