package arrayset

import (
	"github.com/graph-guard/arraycoll/pkg/container"
	"golang.org/x/exp/constraints"
)

// ListIterator is a bidirectional iterator over a Set or a View.
// next is an absolute index into the set's slice,
// last is -1 when there was no Next or Previous since the last Remove.
type ListIterator[T constraints.Ordered] struct {
	s    *Set[T]
	view *View[T]
	next int
	last int
}

func (i *ListIterator[T]) bounds() (lo, hi int) {
	if i.view != nil {
		return i.view.window()
	}
	return 0, len(i.s.a)
}

// HasNext returns true if Next will succeed.
func (i *ListIterator[T]) HasNext() bool {
	_, hi := i.bounds()
	return i.next < hi
}

// HasPrevious returns true if Previous will succeed.
func (i *ListIterator[T]) HasPrevious() bool {
	lo, _ := i.bounds()
	return i.next > lo
}

// Next returns the next element or container.ErrNoSuchElement.
func (i *ListIterator[T]) Next() (el T, err error) {
	if !i.HasNext() {
		return el, container.ErrNoSuchElement
	}
	i.last = i.next
	i.next++
	return i.s.a[i.last], nil
}

// Previous returns the previous element or container.ErrNoSuchElement.
func (i *ListIterator[T]) Previous() (el T, err error) {
	if !i.HasPrevious() {
		return el, container.ErrNoSuchElement
	}
	i.next--
	i.last = i.next
	return i.s.a[i.last], nil
}

// NextIndex returns the position of the element
// that would be returned by Next, relative to the iterated range.
func (i *ListIterator[T]) NextIndex() int {
	lo, _ := i.bounds()
	return i.next - lo
}

// PreviousIndex returns the position of the element
// that would be returned by Previous, relative to the iterated range.
func (i *ListIterator[T]) PreviousIndex() int {
	return i.NextIndex() - 1
}

// Remove removes the element returned by the last call to
// Next or Previous. Returns container.ErrIllegalState if there was
// no such call since the last Remove.
func (i *ListIterator[T]) Remove() error {
	if i.last < 0 {
		return container.ErrIllegalState
	}
	i.s.deleteAt(i.last)
	if i.last < i.next {
		i.next--
	}
	i.last = -1
	return nil
}

// Set always returns container.ErrUnsupported
// since it would break the order of the set.
func (i *ListIterator[T]) Set(T) error { return container.ErrUnsupported }

// Add always returns container.ErrUnsupported
// since it would break the order of the set.
func (i *ListIterator[T]) Add(T) error { return container.ErrUnsupported }
