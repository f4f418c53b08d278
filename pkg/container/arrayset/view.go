package arrayset

import (
	"github.com/graph-guard/arraycoll/pkg/container"
	"golang.org/x/exp/constraints"
)

var (
	errInvertedRange = &container.ErrorInvalidArgument{
		Argument: "from",
		Message:  "greater than to",
	}
	errOutOfRange = &container.ErrorInvalidArgument{
		Argument: "element",
		Message:  "out of view range",
	}
)

type bound[T any] struct {
	v   T
	set bool
}

// View is a range of a Set. It owns no storage, every call
// recomputes its window against the current state of the set.
type View[T constraints.Ordered] struct {
	s        *Set[T]
	from, to bound[T] // [from, to)
}

// Add adds el to the underlying set.
// Returns an error if el is outside of the view's range.
func (v *View[T]) Add(el T) (bool, error) {
	if !v.inRange(el) {
		return false, errOutOfRange
	}
	return v.s.Add(el), nil
}

// Remove removes el from the underlying set if it's in range.
func (v *View[T]) Remove(el T) bool {
	return v.inRange(el) && v.s.Remove(el)
}

// Contains returns true if el is in range and present.
func (v *View[T]) Contains(el T) bool {
	return v.inRange(el) && v.s.Contains(el)
}

// Len returns the number of elements in range.
func (v *View[T]) Len() int {
	lo, hi := v.window()
	return hi - lo
}

// IsEmpty returns true if no element is in range.
func (v *View[T]) IsEmpty() bool { return v.Len() == 0 }

// First returns the smallest element in range.
func (v *View[T]) First() (el T, err error) {
	lo, hi := v.window()
	if lo >= hi {
		return el, container.ErrNoSuchElement
	}
	return v.s.a[lo], nil
}

// Last returns the greatest element in range.
func (v *View[T]) Last() (el T, err error) {
	lo, hi := v.window()
	if lo >= hi {
		return el, container.ErrNoSuchElement
	}
	return v.s.a[hi-1], nil
}

// Visit loops through the elements in range in ascending order.
// Breaks if true is returned by the fn function.
func (v *View[T]) Visit(fn func(T) (stop bool)) {
	lo, hi := v.window()
	for i := lo; i < hi; i++ {
		if fn(v.s.a[i]) {
			break
		}
	}
}

// Slice returns a copy of the elements in range.
func (v *View[T]) Slice() []T {
	lo, hi := v.window()
	c := make([]T, hi-lo)
	copy(c, v.s.a[lo:hi])
	return c
}

// Iterator returns a bidirectional iterator over the elements in range
// positioned before the first one.
func (v *View[T]) Iterator() *ListIterator[T] {
	lo, _ := v.window()
	return &ListIterator[T]{s: v.s, view: v, next: lo, last: -1}
}

// HeadSet returns a view of the elements in range strictly less than to.
func (v *View[T]) HeadSet(to T) *View[T] {
	n := *v
	if !n.to.set || to < n.to.v {
		n.to = bound[T]{v: to, set: true}
	}
	return &n
}

// TailSet returns a view of the elements in range
// greater than or equal to from.
func (v *View[T]) TailSet(from T) *View[T] {
	n := *v
	if !n.from.set || from > n.from.v {
		n.from = bound[T]{v: from, set: true}
	}
	return &n
}

// SubSet returns a view of the elements in range within [from, to).
// Returns an error if from is greater than to.
func (v *View[T]) SubSet(from, to T) (*View[T], error) {
	if from > to {
		return nil, errInvertedRange
	}
	return v.TailSet(from).HeadSet(to), nil
}

func (v *View[T]) inRange(el T) bool {
	return (!v.from.set || el >= v.from.v) && (!v.to.set || el < v.to.v)
}

// window returns the index range [lo, hi) of the underlying slice.
func (v *View[T]) window() (lo, hi int) {
	lo, hi = 0, len(v.s.a)
	if v.from.set {
		lo, _ = v.s.find(v.from.v)
	}
	if v.to.set {
		hi, _ = v.s.find(v.to.v)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
