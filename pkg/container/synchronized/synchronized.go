// Package synchronized provides a container.Map decorator
// guarding every call with a single lock.
//
// Views and iterators of the wrapped map are not guarded per step.
// Iterating requires holding the lock for the whole iteration,
// either through Do or by locking Locker() explicitly.
package synchronized

import (
	"sync"

	"github.com/graph-guard/arraycoll/pkg/container"
)

// Map is a container.Map that is safe for concurrent use.
type Map[K comparable, V any] struct {
	mu   sync.Mutex
	lock sync.Locker
	m    container.Map[K, V]
}

var _ container.Map[int, int] = new(Map[int, int])

// New wraps m. If lock is nil the wrapper's own mutex is used.
func New[K comparable, V any](
	m container.Map[K, V], lock sync.Locker,
) *Map[K, V] {
	s := &Map[K, V]{m: m, lock: lock}
	if lock == nil {
		s.lock = &s.mu
	}
	return s
}

// Locker returns the lock guarding the wrapped map.
func (s *Map[K, V]) Locker() sync.Locker { return s.lock }

// Do calls fn with the wrapped map while holding the lock.
// fn must not call methods of s.
func (s *Map[K, V]) Do(fn func(m container.Map[K, V])) {
	s.lock.Lock()
	defer s.lock.Unlock()
	fn(s.m)
}

func (s *Map[K, V]) Get(key K) V {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.Get(key)
}

func (s *Map[K, V]) Lookup(key K) (V, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.Lookup(key)
}

func (s *Map[K, V]) ContainsKey(key K) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.ContainsKey(key)
}

func (s *Map[K, V]) ContainsValue(value V) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.ContainsValue(value)
}

func (s *Map[K, V]) Put(key K, value V) V {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.Put(key, value)
}

func (s *Map[K, V]) Remove(key K) V {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.Remove(key)
}

func (s *Map[K, V]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.m.Clear()
}

func (s *Map[K, V]) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.Len()
}

func (s *Map[K, V]) IsEmpty() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.IsEmpty()
}

func (s *Map[K, V]) DefaultReturnValue() V {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.m.DefaultReturnValue()
}

func (s *Map[K, V]) SetDefaultReturnValue(v V) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.m.SetDefaultReturnValue(v)
}

// Visit holds the lock for the whole traversal.
// fn must not call methods of s.
func (s *Map[K, V]) Visit(fn func(K, V) (stop bool)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.m.Visit(fn)
}
