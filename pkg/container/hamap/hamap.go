// Package hamap provides a collision-safe hashmap backed by a slice of
// buckets sorted by key hash. It serves as the hashed reference point
// for the linear-scan arraymap in the pkg/container benchmarks.
// Allocations are made only in case of rare hash collisions.
// By default, XXH3 from github.com/zeebo/xxh3 is used with seed 0.
package hamap

import (
	"github.com/google/go-cmp/cmp"
	"github.com/graph-guard/arraycoll/pkg/container"
	"github.com/graph-guard/arraycoll/pkg/container/internal/search"
	"github.com/pierrec/xxHash/xxHash64"
	"github.com/zeebo/xxh3"
)

type KeyInterface interface{ string | []byte }

type bucket[K KeyInterface, V any] struct {
	KeyHash uint64
	Pair[K, V]
}

// Pair is a key-value pair and the head of a collision chain.
type Pair[K KeyInterface, V any] struct {
	Key   K
	Value V
	Next  *Pair[K, V]
}

type Hasher[K KeyInterface] interface{ Hash(K) uint64 }

// Map is backed by a slice of buckets and utilizes binary search
// over key hashes.
//
// WARNING: In case of []byte typed keys the keys will
// be aliased and must remain immutable until the map is reset!
type Map[K KeyInterface, V any] struct {
	size   int
	d      []bucket[K, V]
	hasher Hasher[K]
}

var _ container.Mapper[string, int] = new(Map[string, int])

// HasherXXH3 can be used to provide custom seeds during initialization.
type HasherXXH3[K KeyInterface] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherXXH3[K]) Hash(k K) uint64 {
	return xxh3.HashSeed([]byte(k), h.Seed)
}

// HasherXXH64 hashes keys with XXH64 from github.com/pierrec/xxHash.
type HasherXXH64[K KeyInterface] struct {
	Seed uint64
}

func (h *HasherXXH64[K]) Hash(k K) uint64 {
	return xxHash64.Checksum([]byte(k), h.Seed)
}

// New creates a new map instance.
// XXH3 with seed 0 is used if hasher is nil.
func New[K KeyInterface, V any](capacity int, hasher Hasher[K]) *Map[K, V] {
	if hasher == nil {
		hasher = &HasherXXH3[K]{}
	}
	return &Map[K, V]{
		d:      make([]bucket[K, V], 0, capacity),
		hasher: hasher,
	}
}

// Equal returns true if both maps hold the same buckets
// and use the same hasher.
func (m *Map[K, V]) Equal(mm *Map[K, V]) bool {
	return m.size == mm.size && cmp.Equal(m.d, mm.d) && m.hasher == mm.hasher
}

// Reset resets the map
func (m *Map[K, V]) Reset() {
	m.d, m.size = m.d[:0], 0
}

// Set associates key with value overwriting any existing associations.
//
// WARNING: In case of []byte typed keys the map will alias keys!
func (m *Map[K, V]) Set(key K, value V) {
	m.SetFn(key, func(v *V) V {
		if v != nil {
			*v = value
		}
		return value
	})
}

// SetFn calls fn(nil) if the key doesn't exist yet and associates
// the value returned by fn with the key. If the key already exists
// then fn is passed a pointer to the value already associated with the key.
func (m *Map[K, V]) SetFn(key K, fn func(*V) V) {
	hash := m.hasher.Hash(key)
	i, found := m.index(hash)
	if found {
		for p := &m.d[i].Pair; ; p = p.Next {
			if string(p.Key) == string(key) {
				_ = fn(&p.Value)
				return
			}
			if p.Next == nil {
				// Hash collision, key doesn't yet exist
				m.size++
				p.Next = &Pair[K, V]{Key: key, Value: fn(nil)}
				return
			}
		}
	}

	m.size++
	m.d = append(m.d, bucket[K, V]{})
	copy(m.d[i+1:], m.d[i:len(m.d)-1])
	m.d[i] = bucket[K, V]{hash, Pair[K, V]{Key: key, Value: fn(nil)}}
}

// Get returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	if p := m.lookup(key); p != nil {
		return p.Value, true
	}
	return value, false
}

// GetFn calls fn providing a pointer to the value and
// returns true if key exists, otherwise returns false.
func (m *Map[K, V]) GetFn(key K, fn func(*V)) (ok bool) {
	if p := m.lookup(key); p != nil {
		fn(&p.Value)
		return true
	}
	return false
}

func (m *Map[K, V]) lookup(key K) *Pair[K, V] {
	i, found := m.index(m.hasher.Hash(key))
	if !found {
		return nil
	}
	for p := &m.d[i].Pair; p != nil; p = p.Next {
		if string(p.Key) == string(key) {
			return p
		}
	}
	return nil
}

func (m *Map[K, V]) index(keyHash uint64) (i int, found bool) {
	return search.Find(len(m.d), m.hashAt, keyHash)
}

func (m *Map[K, V]) hashAt(i int) uint64 { return m.d[i].KeyHash }

// Delete deletes the key if it exists.
// Noop if the key doesn't exist.
func (m *Map[K, V]) Delete(key K) {
	i, found := m.index(m.hasher.Hash(key))
	if !found {
		return
	}
	head := &m.d[i].Pair
	if string(head.Key) == string(key) {
		if head.Next == nil {
			copy(m.d[i:], m.d[i+1:])
			m.d[len(m.d)-1] = bucket[K, V]{}
			m.d = m.d[:len(m.d)-1]
		} else {
			*head = *head.Next
		}
		m.size--
		return
	}
	for prev, p := head, head.Next; p != nil; prev, p = p, p.Next {
		if string(p.Key) == string(key) {
			prev.Next = p.Next
			m.size--
			return
		}
	}
}

// Len returns the number of stored key-value pairs.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for i := range m.d {
		for p := &m.d[i].Pair; p != nil; p = p.Next {
			if fn(p.Key, p.Value) {
				return
			}
		}
	}
}

// Values returns all map values
func (m *Map[K, V]) Values() (values []V) {
	m.Visit(func(key K, value V) (stop bool) {
		values = append(values, value)
		return false
	})
	return
}
