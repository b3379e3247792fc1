package store

import "sync"

// Cache keeps a thread-safe, ordered snapshot of items keyed by id.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	keyOf func(V) K
	order []K
	items map[K]V
}

// NewCache constructs an empty Cache that indexes items with keyOf.
func NewCache[K comparable, V any](keyOf func(V) K) *Cache[K, V] {
	return &Cache[K, V]{
		keyOf: keyOf,
		items: make(map[K]V),
	}
}

// List returns a copy of the cached items in insertion order.
func (c *Cache[K, V]) List() []V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]V, 0, len(c.order))
	for _, k := range c.order {
		result = append(result, c.items[k])
	}
	return result
}

// Get retrieves an item by key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[key]
	return v, ok
}

// Len reports how many items are cached.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Replace swaps the existing items with a new snapshot. Later duplicates win
// but keep the position of the first occurrence.
func (c *Cache[K, V]) Replace(items []V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]V, len(items))
	c.order = make([]K, 0, len(items))
	for _, v := range items {
		k := c.keyOf(v)
		if _, seen := c.items[k]; !seen {
			c.order = append(c.order, k)
		}
		c.items[k] = v
	}
}

// Remove drops key from the cache and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}
