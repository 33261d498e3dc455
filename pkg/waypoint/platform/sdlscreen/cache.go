package sdlscreen

import "sync"

const defaultMaxCacheSize = 5

// cache is a least-recently-used cache that loads values on miss and
// destroys them on eviction.
type cache[T any] struct {
	mu      sync.Mutex
	values  map[string]T
	order   []string // tracks use order for LRU eviction
	maxSize int
	load    func(key string) (T, error)
	destroy func(T)
}

func newCache[T any](maxSize int, load func(string) (T, error), destroy func(T)) *cache[T] {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &cache[T]{
		values:  make(map[string]T),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		load:    load,
		destroy: destroy,
	}
}

// get returns the value for key, loading it if it is not cached.
func (c *cache[T]) get(key string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.values[key]; ok {
		c.moveToEnd(key)
		return v, nil
	}

	v, err := c.load(key)
	if err != nil {
		var zero T
		return zero, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.values[key] = v
	c.order = append(c.order, key)
	return v, nil
}

func (c *cache[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *cache[T]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *cache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, ok := c.values[oldest]; ok {
		c.destroy(v)
		delete(c.values, oldest)
	}
}

// clear destroys every cached value.
func (c *cache[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range c.values {
		c.destroy(v)
	}
	c.values = make(map[string]T)
	c.order = c.order[:0]
}
