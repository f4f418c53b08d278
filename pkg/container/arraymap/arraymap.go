// Package arraymap provides an associative container backed by
// two parallel slices and linear search.
//
// For a very small number of pairs a plain scan over the key slice
// outperforms hashing since it avoids computing hashes and chasing
// buckets. Every operation is O(n), so the map should only be used
// below a size threshold the caller has measured
// (see pkg/container benchmarks).
//
// Keys are compared with == except that a NaN float key
// matches any other NaN key.
//
// A miss is never an error. Get, Put and Remove return the
// per-instance default return value instead, Lookup additionally
// reports whether the key was found.
//
// Map is not safe for concurrent use,
// see package synchronized for a locking decorator.
package arraymap

import (
	"reflect"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"github.com/graph-guard/arraycoll/pkg/container"
	"github.com/graph-guard/arraycoll/pkg/math"
)

// Map is a linear-scan associative container.
// keys[i] is associated with values[i] for every i in [0, size).
type Map[K comparable, V any] struct {
	keys   []K
	values []V
	size   int
	defRet V
}

var _ container.Map[int, string] = new(Map[int, string])

// New creates an empty map with room for capacity pairs.
func New[K comparable, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		keys:   make([]K, capacity),
		values: make([]V, capacity),
	}
}

// NewFrom creates a map backed by keys and values.
// Both slices are aliased, not copied.
//
// WARNING: keys must be distinct, this is not verified.
func NewFrom[K comparable, V any](keys []K, values []V) (*Map[K, V], error) {
	return NewFromLen(keys, values, len(keys))
}

// NewFromLen is like NewFrom but only the first size pairs are live.
func NewFromLen[K comparable, V any](
	keys []K, values []V, size int,
) (*Map[K, V], error) {
	if len(keys) != len(values) {
		return nil, &container.ErrorInvalidArgument{
			Argument: "values",
			Message: "keys and values have different lengths (" +
				strconv.Itoa(len(keys)) + ", " +
				strconv.Itoa(len(values)) + ")",
		}
	}
	if size < 0 || size > len(keys) {
		return nil, &container.ErrorInvalidArgument{
			Argument: "size",
			Message: "size " + strconv.Itoa(size) +
				" is out of range for buffers of length " +
				strconv.Itoa(len(keys)),
		}
	}
	return &Map[K, V]{keys: keys, values: values, size: size}, nil
}

// Get returns the value associated with key or
// the default return value if there is none.
func (m *Map[K, V]) Get(key K) V {
	if i := m.findKeyReverse(key); i > -1 {
		return m.values[i]
	}
	return m.defRet
}

// Lookup returns (value, true) if key exists,
// otherwise returns (defaultReturnValue, false).
func (m *Map[K, V]) Lookup(key K) (value V, ok bool) {
	if i := m.findKeyReverse(key); i > -1 {
		return m.values[i], true
	}
	return m.defRet, false
}

// ContainsKey returns true if key exists.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.findKeyReverse(key) > -1
}

// ContainsValue returns true if any key is associated with value.
// Values are compared using github.com/google/go-cmp which panics
// on structs with unexported fields.
func (m *Map[K, V]) ContainsValue(value V) bool {
	return m.findValue(value) > -1
}

// Put associates key with value and returns the previously associated
// value, or the default return value if key didn't exist.
func (m *Map[K, V]) Put(key K, value V) V {
	if i := m.findKey(key); i > -1 {
		old := m.values[i]
		m.values[i] = value
		return old
	}
	if m.size == len(m.keys) {
		m.grow()
	}
	m.keys[m.size], m.values[m.size] = key, value
	m.size++
	return m.defRet
}

// Remove removes key and returns the value that was associated with it,
// or the default return value if key didn't exist.
func (m *Map[K, V]) Remove(key K) V {
	i := m.findKey(key)
	if i < 0 {
		return m.defRet
	}
	old := m.values[i]
	m.removeAt(i)
	return old
}

// RemoveIf removes all pairs for which fn returns true
// and returns the number of removed pairs.
// The order of the remaining pairs is preserved.
func (m *Map[K, V]) RemoveIf(fn func(key K, value V) bool) (removed int) {
	n := 0
	for i := 0; i < m.size; i++ {
		if fn(m.keys[i], m.values[i]) {
			continue
		}
		m.keys[n], m.values[n] = m.keys[i], m.values[i]
		n++
	}
	removed = m.size - n
	m.zero(n, m.size)
	m.size = n
	return removed
}

// Clear removes all pairs. The buffers are retained
// but all references they held are released.
func (m *Map[K, V]) Clear() {
	m.zero(0, m.size)
	m.size = 0
}

// Len returns the number of stored key-value pairs.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty returns true if there are no pairs.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Cap returns the number of pairs the map can hold without growing.
func (m *Map[K, V]) Cap() int { return len(m.keys) }

// DefaultReturnValue returns the value returned on misses.
func (m *Map[K, V]) DefaultReturnValue() V { return m.defRet }

// SetDefaultReturnValue changes the value returned on misses.
// Stored pairs are not affected.
func (m *Map[K, V]) SetDefaultReturnValue(v V) { m.defRet = v }

// Visit calls fn for every stored key-value pair in insertion order.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for i := 0; i < m.size; i++ {
		if fn(m.keys[i], m.values[i]) {
			break
		}
	}
}

// Clone returns a copy with buffers sized exactly to the
// number of stored pairs. The default return value is copied too.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		keys:   make([]K, m.size),
		values: make([]V, m.size),
		size:   m.size,
		defRet: m.defRet,
	}
	copy(c.keys, m.keys[:m.size])
	copy(c.values, m.values[:m.size])
	return c
}

// KeySet returns a view of the keys.
func (m *Map[K, V]) KeySet() KeySet[K, V] { return KeySet[K, V]{m: m} }

// Values returns a view of the values.
func (m *Map[K, V]) Values() ValueCollection[K, V] {
	return ValueCollection[K, V]{m: m}
}

// Entries returns a view of the key-value pairs.
func (m *Map[K, V]) Entries() EntrySet[K, V] { return EntrySet[K, V]{m: m} }

func (m *Map[K, V]) findKey(key K) int {
	for i := 0; i < m.size; i++ {
		if keyEqual(m.keys[i], key) {
			return i
		}
	}
	return -1
}

// findKeyReverse scans from the most recently appended pair.
func (m *Map[K, V]) findKeyReverse(key K) int {
	for i := m.size - 1; i >= 0; i-- {
		if keyEqual(m.keys[i], key) {
			return i
		}
	}
	return -1
}

// keyEqual is == except that any two float NaN keys are equal.
func keyEqual[K comparable](a, b K) bool {
	if a == b {
		return true
	}
	if a == a || b == b {
		return false
	}
	// Both are self-unequal, which for floats means NaN. Composite
	// keys holding a NaN stay unequal.
	switch reflect.ValueOf(a).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (m *Map[K, V]) findValue(value V) int {
	for i := 0; i < m.size; i++ {
		if cmp.Equal(m.values[i], value) {
			return i
		}
	}
	return -1
}

func (m *Map[K, V]) grow() {
	c := math.GrowCap(m.size)
	keys, values := make([]K, c), make([]V, c)
	copy(keys, m.keys[:m.size])
	copy(values, m.values[:m.size])
	m.keys, m.values = keys, values
}

// removeAt shifts the tail after i one position to the left.
func (m *Map[K, V]) removeAt(i int) {
	copy(m.keys[i:], m.keys[i+1:m.size])
	copy(m.values[i:], m.values[i+1:m.size])
	m.size--
	m.zero(m.size, m.size+1)
}

// zero resets the slots in [from, to) of both buffers
// to release what they reference.
func (m *Map[K, V]) zero(from, to int) {
	var k K
	var v V
	for i := from; i < to; i++ {
		m.keys[i], m.values[i] = k, v
	}
}
