// Package cache holds compiled bindings keyed by their exact source text,
// so that repeated compilation of the same attribute value across renders
// is O(1) after the first.
package cache

import (
	"container/list"
	"sync"

	"github.com/loomui/go-loom/debug"
	"github.com/loomui/go-loom/ir"
)

type entry struct {
	key     string
	binding ir.Evaluable
}

// Cache is a concurrency-safe LRU cache of compiled bindings. Compiled
// bindings are immutable and idempotent to rebuild, so concurrent misses
// may compute redundantly; the first insert wins.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// New creates a cache with the given capacity; capacity <= 0 selects a
// default of 4096.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 4096
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (c *Cache) Get(key string) (ir.Evaluable, bool) {
	c.mu.RLock()
	el, ok := c.items[key]
	alreadyFront := ok && c.ll.Front() == el
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !alreadyFront {
		c.mu.Lock()
		el, ok = c.items[key]
		if ok {
			c.ll.MoveToFront(el)
		}
		c.mu.Unlock()
		if !ok {
			return nil, false
		}
	}
	return el.Value.(*entry).binding, true
}

func (c *Cache) Set(key string, b ir.Evaluable) ir.Evaluable {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		// a concurrent compile got here first; keep its instance so
		// lookups stay identity-stable
		c.ll.MoveToFront(el)
		return el.Value.(*entry).binding
	}
	if c.ll.Len() >= c.capacity {
		c.evictLocked()
	}
	el := c.ll.PushFront(&entry{key: key, binding: b})
	c.items[key] = el
	if debug.Cache() {
		debug.Logf("cache: insert %q (%d/%d)\n", key, c.ll.Len(), c.capacity)
	}
	return b
}

// GetOrCompile returns the cached binding for key, or calls compile and
// caches the result.
func (c *Cache) GetOrCompile(key string, compile func() (ir.Evaluable, error)) (ir.Evaluable, error) {
	if b, ok := c.Get(key); ok {
		return b, nil
	}
	b, err := compile()
	if err != nil {
		return nil, err
	}
	return c.Set(key, b), nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	return n
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

func (c *Cache) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	key := el.Value.(*entry).key
	delete(c.items, key)
	if debug.Cache() {
		debug.Logf("cache: evict %q\n", key)
	}
}
