package gomap_test

import (
	"sort"
	"testing"

	"github.com/graph-guard/arraycoll/pkg/container/gomap"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	m := gomap.New[string, int](4)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 3, v)

	m.Delete("a")
	v, ok = m.Get("a")
	require.False(t, ok)
	require.Zero(t, v)
	require.Equal(t, 1, m.Len())

	m.Reset()
	require.Zero(t, m.Len())
}

func TestVisit(t *testing.T) {
	m := gomap.New[int, int](4)
	for i := 0; i < 4; i++ {
		m.Set(i, i*2)
	}
	var keys []int
	m.Visit(func(k, v int) (stop bool) {
		require.Equal(t, k*2, v)
		keys = append(keys, k)
		return false
	})
	sort.Ints(keys)
	require.Equal(t, []int{0, 1, 2, 3}, keys)

	calls := 0
	m.Visit(func(k, v int) (stop bool) {
		calls++
		return true
	})
	require.Equal(t, 1, calls)
}
