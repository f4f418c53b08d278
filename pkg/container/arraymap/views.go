package arraymap

import "github.com/google/go-cmp/cmp"

// Entry is a key-value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// KeySet is a view of the keys of a Map.
// It owns no storage and always reflects the current state of the map.
type KeySet[K comparable, V any] struct{ m *Map[K, V] }

// Len returns the number of keys.
func (s KeySet[K, V]) Len() int { return s.m.size }

// Contains returns true if key exists.
func (s KeySet[K, V]) Contains(key K) bool { return s.m.ContainsKey(key) }

// Clear removes all pairs from the map.
func (s KeySet[K, V]) Clear() { s.m.Clear() }

// Remove removes key and its value from the map.
// Returns false if key didn't exist.
func (s KeySet[K, V]) Remove(key K) bool {
	m := s.m
	for i := 0; i < m.size; i++ {
		if keyEqual(m.keys[i], key) {
			m.removeAt(i)
			return true
		}
	}
	return false
}

// Iterator returns an iterator over the keys in insertion order.
func (s KeySet[K, V]) Iterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{cursor: newCursor(s.m)}
}

// Visit calls fn for every key. Returns immediately if fn returns true.
func (s KeySet[K, V]) Visit(fn func(K) (stop bool)) {
	for i := 0; i < s.m.size; i++ {
		if fn(s.m.keys[i]) {
			break
		}
	}
}

// Slice returns a copy of the keys.
func (s KeySet[K, V]) Slice() []K {
	c := make([]K, s.m.size)
	copy(c, s.m.keys[:s.m.size])
	return c
}

// ValueCollection is a view of the values of a Map.
// It owns no storage and always reflects the current state of the map.
type ValueCollection[K comparable, V any] struct{ m *Map[K, V] }

// Len returns the number of values.
func (c ValueCollection[K, V]) Len() int { return c.m.size }

// Contains returns true if any key is associated with value.
func (c ValueCollection[K, V]) Contains(value V) bool {
	return c.m.ContainsValue(value)
}

// Clear removes all pairs from the map.
func (c ValueCollection[K, V]) Clear() { c.m.Clear() }

// Iterator returns an iterator over the values in insertion order.
// Removing through the iterator removes the pair at the iterator's
// position, not the first pair holding an equal value.
func (c ValueCollection[K, V]) Iterator() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{cursor: newCursor(c.m)}
}

// Visit calls fn for every value. Returns immediately if fn returns true.
func (c ValueCollection[K, V]) Visit(fn func(V) (stop bool)) {
	for i := 0; i < c.m.size; i++ {
		if fn(c.m.values[i]) {
			break
		}
	}
}

// Slice returns a copy of the values.
func (c ValueCollection[K, V]) Slice() []V {
	s := make([]V, c.m.size)
	copy(s, c.m.values[:c.m.size])
	return s
}

// EntrySet is a view of the key-value pairs of a Map.
// It owns no storage and always reflects the current state of the map.
type EntrySet[K comparable, V any] struct{ m *Map[K, V] }

// Len returns the number of pairs.
func (s EntrySet[K, V]) Len() int { return s.m.size }

// Contains returns true if e.Key exists and is associated with e.Value.
func (s EntrySet[K, V]) Contains(e Entry[K, V]) bool {
	i := s.m.findKeyReverse(e.Key)
	return i > -1 && cmp.Equal(s.m.values[i], e.Value)
}

// Remove removes e.Key if it's associated with e.Value.
// Returns false if the pair didn't exist.
func (s EntrySet[K, V]) Remove(e Entry[K, V]) bool {
	i := s.m.findKey(e.Key)
	if i < 0 || !cmp.Equal(s.m.values[i], e.Value) {
		return false
	}
	s.m.removeAt(i)
	return true
}

// Clear removes all pairs from the map.
func (s EntrySet[K, V]) Clear() { s.m.Clear() }

// Iterator returns an iterator producing a new Entry on every step.
func (s EntrySet[K, V]) Iterator() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{cursor: newCursor(s.m)}
}

// FastIterator returns an iterator that reuses a single Entry.
//
// WARNING: the *Entry returned by Next is overwritten
// by the following call to Next and must not be retained.
func (s EntrySet[K, V]) FastIterator() *FastEntryIterator[K, V] {
	return &FastEntryIterator[K, V]{cursor: newCursor(s.m)}
}

// Visit calls fn for every pair. Returns immediately if fn returns true.
func (s EntrySet[K, V]) Visit(fn func(Entry[K, V]) (stop bool)) {
	for i := 0; i < s.m.size; i++ {
		if fn(Entry[K, V]{Key: s.m.keys[i], Value: s.m.values[i]}) {
			break
		}
	}
}
