// Package memory provides map-backed repository implementations. They serve
// the test suites and the no-database development mode; the postgres package
// is the production counterpart.
package memory

import (
	"sort"
	"sync"
)

// catalog is a mutex-guarded id-keyed table. The id accessor lets create
// assign sequence values in place; the key accessor powers name lookups and
// may return "" for entities without a natural key.
type catalog[T any] struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]T
	id    func(*T) *int64
	key   func(T) string
}

func newCatalog[T any](id func(*T) *int64, key func(T) string) *catalog[T] {
	if key == nil {
		key = func(T) string { return "" }
	}
	return &catalog[T]{items: make(map[int64]T), id: id, key: key}
}

func (c *catalog[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return *c.id(&out[i]) < *c.id(&out[j]) })
	return out
}

func (c *catalog[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *catalog[T]) getByKey(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.key(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// find returns the first item matching pred, in id order.
func (c *catalog[T]) find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int64, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if item := c.items[id]; pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *catalog[T]) filter(pred func(T) bool) []T {
	all := c.list()
	out := make([]T, 0, len(all))
	for _, item := range all {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *catalog[T]) create(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	*c.id(&item) = c.seq
	c.items[c.seq] = item
	return item
}

func (c *catalog[T]) update(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := *c.id(&item)
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = item
	return true
}

func (c *catalog[T]) delete(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// mutate applies fn to every stored item under the write lock.
func (c *catalog[T]) mutate(fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, item := range c.items {
		fn(&item)
		c.items[id] = item
	}
}
