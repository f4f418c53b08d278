// Package testeq provides test assertions reporting every mismatch
// between the expected and the actual sequence instead of
// stopping at the first one.
package testeq

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

type Writer interface {
	Helper()
	Errorf(fmt string, v ...any)
}

type Pair[K, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}

func Slices[T any](
	writer Writer,
	title string,
	expect, actual []T,
	check func(expected, actual T) (errMsg string),
	stringify func(T) string,
) (ok bool) {
	writer.Helper()
	ok = true

	n := len(actual)
	if len(expect) < n {
		n = len(expect)
	}
	for i := 0; i < n; i++ {
		if errMsg := check(expect[i], actual[i]); errMsg != "" {
			writer.Errorf(
				"mismatching %s at index %d: %s",
				title, i, errMsg,
			)
			ok = false
		}
	}
	for i := n; i < len(actual); i++ {
		writer.Errorf(
			"unexpected %s at index %d (%s)",
			title, i, stringify(actual[i]),
		)
		ok = false
	}
	for i := n; i < len(expect); i++ {
		writer.Errorf(
			"missing %s at index %d (%s)",
			title, i, stringify(expect[i]),
		)
		ok = false
	}
	return ok
}

// Visited collects every pair visit passes to its callback.
func Visited[K, V any](visit func(func(K, V) (stop bool))) []Pair[K, V] {
	var p []Pair[K, V]
	visit(func(k K, v V) (stop bool) {
		p = append(p, Pair[K, V]{Key: k, Value: v})
		return false
	})
	return p
}

// Pairs checks that visit yields exactly the expected pairs in order.
// Keys and values are compared with cmp.Equal.
func Pairs[K, V any](
	writer Writer,
	expect []Pair[K, V],
	visit func(func(K, V) (stop bool)),
) (ok bool) {
	writer.Helper()
	return Slices(
		writer, "pair", expect, Visited(visit),
		func(e, a Pair[K, V]) string {
			if cmp.Equal(e.Key, a.Key) && cmp.Equal(e.Value, a.Value) {
				return ""
			}
			return fmt.Sprintf("expected (%s), got (%s)", e, a)
		},
		Pair[K, V].String,
	)
}

// Sorted checks that s is in strictly ascending order.
func Sorted[T constraints.Ordered](
	writer Writer, title string, s []T,
) (ok bool) {
	writer.Helper()
	ok = true
	for i := 1; i < len(s); i++ {
		if s[i-1] == s[i] {
			writer.Errorf("duplicate %s at index %d (%v)", title, i, s[i])
			ok = false
		} else if s[i-1] > s[i] {
			writer.Errorf(
				"unordered %s at index %d (%v after %v)",
				title, i, s[i], s[i-1],
			)
			ok = false
		}
	}
	return ok
}
