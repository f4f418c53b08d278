// Package arrayset provides a sorted set backed by a slice.
// Lookups use binary search, switching to exponential search
// for large sets. Insertions and deletions shift the tail.
//
// NaN elements are not supported.
package arrayset

import (
	"github.com/graph-guard/arraycoll/pkg/container"
	"github.com/graph-guard/arraycoll/pkg/container/internal/search"
	"golang.org/x/exp/constraints"
)

// Set is a sorted set of distinct elements.
type Set[T constraints.Ordered] struct {
	a []T
}

// New creates a new instance of Set.
func New[T constraints.Ordered](capacity int, elements ...T) *Set[T] {
	s := &Set[T]{
		a: make([]T, 0, capacity),
	}
	for _, el := range elements {
		s.Add(el)
	}
	return s
}

// Reset removes all elements.
func (s *Set[T]) Reset() {
	s.zero(0, len(s.a))
	s.a = s.a[:0]
}

// Add adds el to the set. Returns false if el was already present.
func (s *Set[T]) Add(el T) bool {
	i, found := s.find(el)
	if found {
		return false
	}
	s.a = append(s.a, el)
	copy(s.a[i+1:], s.a[i:len(s.a)-1])
	s.a[i] = el
	return true
}

// Remove removes el from the set. Returns false if el wasn't present.
func (s *Set[T]) Remove(el T) bool {
	i, found := s.find(el)
	if !found {
		return false
	}
	s.deleteAt(i)
	return true
}

// Contains returns true if el is present.
func (s *Set[T]) Contains(el T) bool {
	_, found := s.find(el)
	return found
}

// Index returns the index of el or -1 if it wasn't found.
func (s *Set[T]) Index(el T) int {
	if i, found := s.find(el); found {
		return i
	}
	return -1
}

// Get returns the element at index i.
func (s *Set[T]) Get(i int) (el T, err error) {
	if i < 0 || i >= len(s.a) {
		return el, container.ErrIndexOutOfBounds(i, len(s.a))
	}
	return s.a[i], nil
}

// Delete removes and returns the element at index i.
func (s *Set[T]) Delete(i int) (el T, err error) {
	if i < 0 || i >= len(s.a) {
		return el, container.ErrIndexOutOfBounds(i, len(s.a))
	}
	el = s.a[i]
	s.deleteAt(i)
	return el, nil
}

// First returns the smallest element
// or container.ErrNoSuchElement if the set is empty.
func (s *Set[T]) First() (el T, err error) {
	if len(s.a) < 1 {
		return el, container.ErrNoSuchElement
	}
	return s.a[0], nil
}

// Last returns the greatest element
// or container.ErrNoSuchElement if the set is empty.
func (s *Set[T]) Last() (el T, err error) {
	if len(s.a) < 1 {
		return el, container.ErrNoSuchElement
	}
	return s.a[len(s.a)-1], nil
}

// Len returns the set length.
func (s *Set[T]) Len() int { return len(s.a) }

// IsEmpty returns true if the set has no elements.
func (s *Set[T]) IsEmpty() bool { return len(s.a) == 0 }

// Visit loops through the set in ascending order.
// Breaks if true is returned by the fn function.
func (s *Set[T]) Visit(fn func(T) (stop bool)) {
	for i := range s.a {
		if fn(s.a[i]) {
			break
		}
	}
}

// Slice returns a copy of the elements in ascending order.
func (s *Set[T]) Slice() []T {
	c := make([]T, len(s.a))
	copy(c, s.a)
	return c
}

// Iterator returns a bidirectional iterator positioned
// before the first element.
func (s *Set[T]) Iterator() *ListIterator[T] {
	return &ListIterator[T]{s: s, last: -1}
}

// IteratorFrom returns a bidirectional iterator whose next element is
// the smallest element greater than el and whose previous element is
// the greatest element smaller than or equal to el.
// el doesn't need to be present in the set.
func (s *Set[T]) IteratorFrom(el T) *ListIterator[T] {
	i, found := s.find(el)
	if found {
		i++
	}
	return &ListIterator[T]{s: s, next: i, last: -1}
}

// HeadSet returns a view of the elements strictly less than to.
func (s *Set[T]) HeadSet(to T) *View[T] {
	return &View[T]{s: s, to: bound[T]{v: to, set: true}}
}

// TailSet returns a view of the elements greater than or equal to from.
func (s *Set[T]) TailSet(from T) *View[T] {
	return &View[T]{s: s, from: bound[T]{v: from, set: true}}
}

// SubSet returns a view of the elements in [from, to).
// Returns an error if from is greater than to.
func (s *Set[T]) SubSet(from, to T) (*View[T], error) {
	if from > to {
		return nil, errInvertedRange
	}
	return &View[T]{
		s:    s,
		from: bound[T]{v: from, set: true},
		to:   bound[T]{v: to, set: true},
	}, nil
}

func (s *Set[T]) find(el T) (int, bool) {
	return search.Find(len(s.a), s.at, el)
}

func (s *Set[T]) at(i int) T { return s.a[i] }

func (s *Set[T]) deleteAt(i int) {
	copy(s.a[i:], s.a[i+1:])
	s.zero(len(s.a)-1, len(s.a))
	s.a = s.a[:len(s.a)-1]
}

func (s *Set[T]) zero(from, to int) {
	var z T
	for i := from; i < to; i++ {
		s.a[i] = z
	}
}
