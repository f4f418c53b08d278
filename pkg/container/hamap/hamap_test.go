package hamap_test

import (
	"strconv"
	"testing"

	"github.com/graph-guard/arraycoll/pkg/container/hamap"
	"github.com/stretchr/testify/require"
)

func TestReset(t *testing.T) {
	m := hamap.New[string, bool](8, &MockHasher[string]{
		Map: map[string]uint64{"0": 0, "1": 1, "2": 2, "3": 3, "4": 4},
	})
	for i := 0; i < 5; i++ {
		m.Set(strconv.Itoa(i), true)
	}
	require.Equal(t, 5, m.Len())

	m.Reset()

	require.Zero(t, m.Len())
	for i := 0; i < 5; i++ {
		v, ok := m.Get(strconv.Itoa(i))
		require.False(t, ok)
		require.Zero(t, v)
	}
}

func TestDefaultHasher(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		m := hamap.New[[]byte, int](8, nil)
		m.Set([]byte("key"), 1)
		v, ok := m.Get([]byte("key"))
		require.True(t, ok)
		require.Equal(t, 1, v)
	})
	t.Run("string", func(t *testing.T) {
		m := hamap.New[string, int](8, nil)
		m.Set("key", 1)
		v, ok := m.Get("key")
		require.True(t, ok)
		require.Equal(t, 1, v)
	})
}

func TestHasherXXH64(t *testing.T) {
	h := &hamap.HasherXXH64[string]{Seed: 1}
	require.Equal(t, h.Hash("key"), h.Hash("key"))
	require.NotEqual(t, h.Hash("key"), (&hamap.HasherXXH64[string]{}).Hash("key"))
	require.Equal(t,
		h.Hash("key"),
		(&hamap.HasherXXH64[[]byte]{Seed: 1}).Hash([]byte("key")),
	)

	m := hamap.New[string, int](0, h)
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Set(k, i)
	}
	require.Equal(t, 4, m.Len())
	v, ok := m.Get("c")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestSet(t *testing.T) {
	m := hamap.New[string, int](8, &MockHasher[string]{
		Map: map[string]uint64{"x": 0, "a": 1, "b": 2, "c": 3},
	})
	m.Set("a", -1)
	m.Set("b", 0)
	m.Set("c", 1)
	Expect(t, m, []string{"a", "b", "c"}, []int{-1, 0, 1})

	m.Set("a", 2)
	m.Set("c", 4)
	Expect(t, m, []string{"a", "b", "c"}, []int{2, 0, 4})

	m.Set("x", 42)
	Expect(t, m, []string{"x", "a", "b", "c"}, []int{42, 2, 0, 4})
}

func TestSetCollision(t *testing.T) {
	m := hamap.New[string, int](8, &MockHasher[string]{
		Map: map[string]uint64{"a": 1, "b": 2, "c": 2, "d": 2},
	})
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Set("d", 4)
	m.Set("c", 30)
	Expect(t, m, []string{"a", "b", "c", "d"}, []int{1, 2, 30, 4})
}

func TestSetFn(t *testing.T) {
	m := hamap.New[string, int](8, nil)
	m.SetFn("a", func(v *int) int {
		require.Nil(t, v)
		return 1
	})
	m.SetFn("a", func(v *int) int {
		require.NotNil(t, v)
		*v++
		return 0
	})
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestGetFn(t *testing.T) {
	m := hamap.New[string, int](8, nil)
	m.Set("a", 1)
	require.True(t, m.GetFn("a", func(v *int) { *v = 10 }))
	require.False(t, m.GetFn("b", func(v *int) { t.Fatal("unexpected call") }))
	v, _ := m.Get("a")
	require.Equal(t, 10, v)
}

func TestDelete(t *testing.T) {
	m := hamap.New[string, int](8, &MockHasher[string]{
		Map: map[string]uint64{"a": 1, "b": 2, "c": 3, "x": 4},
	})
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	m.Delete("x")
	Expect(t, m, []string{"a", "b", "c"}, []int{1, 2, 3})

	m.Delete("b")
	Expect(t, m, []string{"a", "c"}, []int{1, 3})

	m.Delete("a")
	m.Delete("c")
	Expect(t, m, []string{}, []int{})
}

func TestDeleteCollision(t *testing.T) {
	hasher := &MockHasher[string]{
		Map: map[string]uint64{"a": 1, "b": 1, "c": 1, "x": 1},
	}
	t.Run("head", func(t *testing.T) {
		m := hamap.New[string, int](8, hasher)
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)
		m.Delete("a")
		Expect(t, m, []string{"b", "c"}, []int{2, 3})
	})
	t.Run("middle", func(t *testing.T) {
		m := hamap.New[string, int](8, hasher)
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)
		m.Delete("b")
		Expect(t, m, []string{"a", "c"}, []int{1, 3})
	})
	t.Run("tail", func(t *testing.T) {
		m := hamap.New[string, int](8, hasher)
		m.Set("a", 1)
		m.Set("b", 2)
		m.Delete("b")
		m.Delete("x")
		Expect(t, m, []string{"a"}, []int{1})
	})
}

func TestVisitStopInChain(t *testing.T) {
	m := hamap.New[string, int](8, &MockHasher[string]{
		Map: map[string]uint64{"a": 1, "b": 1, "c": 2},
	})
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	calls := 0
	m.Visit(func(k string, v int) (stop bool) {
		calls++
		return k == "a"
	})
	require.Equal(t, 1, calls)
}

func TestValues(t *testing.T) {
	m := hamap.New[string, int](8, &MockHasher[string]{
		Map: map[string]uint64{"a": 1, "b": 2},
	})
	m.Set("b", 2)
	m.Set("a", 1)
	require.Equal(t, []int{1, 2}, m.Values())
}

func TestEqual(t *testing.T) {
	h := &MockHasher[string]{Map: map[string]uint64{"a": 1, "b": 2}}
	a, b := hamap.New[string, int](8, h), hamap.New[string, int](4, h)
	a.Set("a", 1)
	b.Set("a", 1)
	require.True(t, a.Equal(b))
	b.Set("b", 2)
	require.False(t, a.Equal(b))
}

type MockHasher[K hamap.KeyInterface] struct {
	Map map[string]uint64
}

func (h *MockHasher[K]) Hash(k K) uint64 {
	return h.Map[string(k)]
}

func Expect[K hamap.KeyInterface, V any](
	t *testing.T,
	m *hamap.Map[K, V],
	keys []K,
	values []V,
) {
	t.Helper()
	actualKeys := []K{}
	actualValues := []V{}
	require.Equal(t, len(keys), m.Len())
	m.Visit(func(key K, value V) (stop bool) {
		actualKeys = append(actualKeys, key)
		actualValues = append(actualValues, value)
		return false
	})
	require.Equal(t, keys, actualKeys)
	require.Equal(t, values, actualValues)
}
