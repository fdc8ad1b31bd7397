package text

import "sync"

// cache is a thread-safe map with a soft size limit. When it grows past
// the limit the least recently used half is dropped.
type cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[V]
	limit   int
	tick    uint64
}

type cacheEntry[V any] struct {
	value V
	atime uint64
}

func newCache[K comparable, V any](limit int) *cache[K, V] {
	return &cache[K, V]{entries: make(map[K]*cacheEntry[V]), limit: limit}
}

// getOrCreate returns the cached value for key or stores create().
// create runs outside the lock and may be called twice for one key under
// contention; the first stored value wins.
func (c *cache[K, V]) getOrCreate(key K, create func() V) V {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.tick++
		e.atime = c.tick
		v := e.value
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := create()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e.value
	}
	c.tick++
	c.entries[key] = &cacheEntry[V]{value: v, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
	return v
}

// evict drops entries older than the median access time.
// Must be called with mu held.
func (c *cache[K, V]) evict() {
	cutoff := c.tick - uint64(c.limit/2)
	for k, e := range c.entries {
		if e.atime <= cutoff {
			delete(c.entries, k)
		}
	}
}

func (c *cache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *cache[K, V]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*cacheEntry[V])
}
