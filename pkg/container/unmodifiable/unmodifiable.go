// Package unmodifiable provides a read-only container.Map decorator.
package unmodifiable

import "github.com/graph-guard/arraycoll/pkg/container"

// Map forwards reads to the wrapped container.
// Its mutators never touch the wrapped container and
// always fail with container.ErrUnsupported.
type Map[K comparable, V any] struct {
	r container.Reader[K, V]
}

var _ container.Reader[int, int] = new(Map[int, int])

// New wraps r.
func New[K comparable, V any](r container.Reader[K, V]) *Map[K, V] {
	return &Map[K, V]{r: r}
}

func (m *Map[K, V]) Get(key K) V { return m.r.Get(key) }
func (m *Map[K, V]) Lookup(key K) (V, bool) { return m.r.Lookup(key) }
func (m *Map[K, V]) ContainsKey(key K) bool { return m.r.ContainsKey(key) }
func (m *Map[K, V]) ContainsValue(value V) bool { return m.r.ContainsValue(value) }
func (m *Map[K, V]) Len() int { return m.r.Len() }
func (m *Map[K, V]) IsEmpty() bool { return m.r.IsEmpty() }
func (m *Map[K, V]) DefaultReturnValue() V { return m.r.DefaultReturnValue() }
func (m *Map[K, V]) Visit(fn func(K, V) (stop bool)) { m.r.Visit(fn) }

// Put returns the default return value and container.ErrUnsupported.
func (m *Map[K, V]) Put(K, V) (V, error) {
	return m.r.DefaultReturnValue(), container.ErrUnsupported
}

// Remove returns the default return value and container.ErrUnsupported.
func (m *Map[K, V]) Remove(K) (V, error) {
	return m.r.DefaultReturnValue(), container.ErrUnsupported
}

// Clear returns container.ErrUnsupported.
func (m *Map[K, V]) Clear() error { return container.ErrUnsupported }

// SetDefaultReturnValue returns container.ErrUnsupported.
func (m *Map[K, V]) SetDefaultReturnValue(V) error {
	return container.ErrUnsupported
}
