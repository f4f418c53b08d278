// Package gomap provides a container.Mapper implementation
// backed by Go's native map for benchmark reference.
package gomap

import "github.com/graph-guard/arraycoll/pkg/container"

type Gomap[K comparable, V any] struct {
	m        map[K]V
	capacity int
}

var _ container.Mapper[string, int] = new(Gomap[string, int])

func New[K comparable, V any](capacity int) *Gomap[K, V] {
	return &Gomap[K, V]{
		m:        make(map[K]V, capacity),
		capacity: capacity,
	}
}

func (m *Gomap[K, V]) Set(key K, value V) {
	m.m[key] = value
}

func (m *Gomap[K, V]) Delete(key K) {
	delete(m.m, key)
}

func (m *Gomap[K, V]) Get(key K) (v V, ok bool) {
	v, ok = m.m[key]
	return v, ok
}

// Reset reallocates the underlying map with the initial capacity.
func (m *Gomap[K, V]) Reset() {
	m.m = make(map[K]V, m.capacity)
}

func (m *Gomap[K, V]) Len() int {
	return len(m.m)
}

// Visit calls fn for every pair in unspecified order.
// Returns immediately if fn returns true.
func (m *Gomap[K, V]) Visit(fn func(K, V) (stop bool)) {
	for k, v := range m.m {
		if fn(k, v) {
			break
		}
	}
}
