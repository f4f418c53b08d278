package bench

import "github.com/graph-guard/arraycoll/pkg/container"

// ArrayMap adapts a container.Map to container.Mapper.
type ArrayMap[K comparable, V any] struct{ m container.Map[K, V] }

var _ container.Mapper[string, int] = new(ArrayMap[string, int])

func NewArrayMap[K comparable, V any](m container.Map[K, V]) *ArrayMap[K, V] {
	return &ArrayMap[K, V]{m: m}
}

func (a *ArrayMap[K, V]) Set(key K, value V) { a.m.Put(key, value) }

func (a *ArrayMap[K, V]) Get(key K) (V, bool) { return a.m.Lookup(key) }

func (a *ArrayMap[K, V]) Delete(key K) { a.m.Remove(key) }

func (a *ArrayMap[K, V]) Reset() { a.m.Clear() }

func (a *ArrayMap[K, V]) Len() int { return a.m.Len() }

func (a *ArrayMap[K, V]) Visit(fn func(K, V) (stop bool)) { a.m.Visit(fn) }
