// Package search provides binary and exponential search over
// sorted slices addressed through a key accessor.
package search

import (
	"github.com/graph-guard/arraycoll/pkg/math"
	"golang.org/x/exp/constraints"
)

// ExpThreshold is the length from which Find switches
// from plain binary search to exponential search.
const ExpThreshold = 256

// Find returns the index of key and true if it was found,
// otherwise returns the insertion index and false.
// key(i) must return the key at index i in ascending order.
func Find[K constraints.Ordered](n int, key func(int) K, k K) (int, bool) {
	if n >= ExpThreshold {
		return Exp(n, key, k)
	}
	return Bin(key, k, 0, n-1)
}

// Exp utilizes exponential binary search and returns index and true if
// the element was found, otherwise returns bound and false.
func Exp[K constraints.Ordered](n int, key func(int) K, k K) (int, bool) {
	l, r := 0, 1
	if n > 1 {
		for r < n && key(r) < k {
			l = r
			r = r << 1
		}
	}
	return Bin(key, k, l, math.Min(r, n-1))
}

// Bin utilizes binary search over [l, r] and returns index and true if
// the element was found, otherwise returns left bound and false.
func Bin[K constraints.Ordered](key func(int) K, k K, l, r int) (int, bool) {
	for l <= r {
		m := l + (r-l)>>1
		km := key(m)
		if km == k {
			return m, true
		}
		if km > k {
			r = m - 1
		} else {
			l = m + 1
		}
	}
	return l, false
}
