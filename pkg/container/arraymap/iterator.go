package arraymap

import "github.com/graph-guard/arraycoll/pkg/container"

// cursor is the iteration state shared by all iterators of a Map.
// last is -1 when there was no Next since the last Remove.
type cursor[K comparable, V any] struct {
	m    *Map[K, V]
	next int
	last int
}

func newCursor[K comparable, V any](m *Map[K, V]) cursor[K, V] {
	return cursor[K, V]{m: m, last: -1}
}

// HasNext returns true if Next will succeed.
func (c *cursor[K, V]) HasNext() bool { return c.next < c.m.size }

// Remove removes the pair returned by the last call to Next.
// Returns container.ErrIllegalState if Next wasn't called
// since the last Remove.
func (c *cursor[K, V]) Remove() error {
	if c.last < 0 {
		return container.ErrIllegalState
	}
	c.m.removeAt(c.last)
	if c.last < c.next {
		c.next--
	}
	c.last = -1
	return nil
}

func (c *cursor[K, V]) advance() (int, error) {
	if !c.HasNext() {
		return -1, container.ErrNoSuchElement
	}
	c.last = c.next
	c.next++
	return c.last, nil
}

// KeyIterator iterates over the keys of a Map.
type KeyIterator[K comparable, V any] struct{ cursor[K, V] }

// Next returns the next key or container.ErrNoSuchElement.
func (i *KeyIterator[K, V]) Next() (key K, err error) {
	p, err := i.advance()
	if err != nil {
		return key, err
	}
	return i.m.keys[p], nil
}

// ValueIterator iterates over the values of a Map.
type ValueIterator[K comparable, V any] struct{ cursor[K, V] }

// Next returns the next value or container.ErrNoSuchElement.
func (i *ValueIterator[K, V]) Next() (value V, err error) {
	p, err := i.advance()
	if err != nil {
		return value, err
	}
	return i.m.values[p], nil
}

// EntryIterator iterates over the pairs of a Map.
type EntryIterator[K comparable, V any] struct{ cursor[K, V] }

// Next returns a copy of the next pair or container.ErrNoSuchElement.
func (i *EntryIterator[K, V]) Next() (e Entry[K, V], err error) {
	p, err := i.advance()
	if err != nil {
		return e, err
	}
	return Entry[K, V]{Key: i.m.keys[p], Value: i.m.values[p]}, nil
}

// FastEntryIterator iterates over the pairs of a Map
// without allocating an Entry per step.
type FastEntryIterator[K comparable, V any] struct {
	cursor[K, V]
	e Entry[K, V]
}

// Next overwrites the iterator's entry with the next pair and returns it.
// Returns nil and container.ErrNoSuchElement when exhausted.
func (i *FastEntryIterator[K, V]) Next() (*Entry[K, V], error) {
	p, err := i.advance()
	if err != nil {
		return nil, err
	}
	i.e.Key, i.e.Value = i.m.keys[p], i.m.values[p]
	return &i.e, nil
}
