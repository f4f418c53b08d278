package arrayset_test

import (
	"testing"

	"github.com/graph-guard/arraycoll/pkg/container"
	"github.com/graph-guard/arraycoll/pkg/container/arrayset"
	"github.com/stretchr/testify/require"
)

func TestHeadSet(t *testing.T) {
	s := arrayset.New(8, 1, 2, 3, 4)
	h := s.HeadSet(3)
	ExpectView(t, h, 1, 2)
	require.True(t, h.Contains(2))
	require.False(t, h.Contains(3))

	// Views reflect the set
	s.Add(0)
	s.Add(5)
	ExpectView(t, h, 0, 1, 2)
}

func TestTailSet(t *testing.T) {
	s := arrayset.New(8, 1, 2, 3, 4)
	tl := s.TailSet(3)
	ExpectView(t, tl, 3, 4)
	f, err := tl.First()
	require.NoError(t, err)
	require.Equal(t, 3, f)
	l, err := tl.Last()
	require.NoError(t, err)
	require.Equal(t, 4, l)
}

func TestSubSet(t *testing.T) {
	s := arrayset.New(8, "a", "b", "c", "d", "e")
	v, err := s.SubSet("b", "d")
	require.NoError(t, err)
	ExpectView(t, v, "b", "c")
	require.Equal(t, []string{"b", "c"}, v.Slice())

	_, err = s.SubSet("d", "b")
	require.Equal(t, &container.ErrorInvalidArgument{
		Argument: "from",
		Message:  "greater than to",
	}, err)
}

func TestViewAdd(t *testing.T) {
	s := arrayset.New(8, 1, 5)
	v, err := s.SubSet(2, 5)
	require.NoError(t, err)

	ok, err := v.Add(3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = v.Add(3)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = v.Add(5)
	require.Equal(t, &container.ErrorInvalidArgument{
		Argument: "element",
		Message:  "out of view range",
	}, err)
	require.False(t, ok)

	Expect(t, s, 1, 3, 5)
	ExpectView(t, v, 3)
}

func TestViewRemove(t *testing.T) {
	s := arrayset.New(8, 1, 2, 3)
	h := s.HeadSet(2)
	require.False(t, h.Remove(3))
	require.True(t, h.Remove(1))
	Expect(t, s, 2, 3)
	require.True(t, h.IsEmpty())
	_, err := h.First()
	require.ErrorIs(t, err, container.ErrNoSuchElement)
	_, err = h.Last()
	require.ErrorIs(t, err, container.ErrNoSuchElement)
}

func TestNestedViews(t *testing.T) {
	s := arrayset.New(16, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	v, err := s.SubSet(2, 8)
	require.NoError(t, err)

	ExpectView(t, v.HeadSet(5), 2, 3, 4)
	ExpectView(t, v.HeadSet(100), 2, 3, 4, 5, 6, 7)
	ExpectView(t, v.TailSet(6), 6, 7)
	ExpectView(t, v.TailSet(-100), 2, 3, 4, 5, 6, 7)

	n, err := v.SubSet(4, 6)
	require.NoError(t, err)
	ExpectView(t, n, 4, 5)

	n, err = v.SubSet(9, 12)
	require.NoError(t, err)
	ExpectView[int](t, n)

	_, err = v.SubSet(6, 4)
	require.Error(t, err)
}

func TestViewIterator(t *testing.T) {
	s := arrayset.New(8, 1, 2, 3, 4, 5)
	v, err := s.SubSet(2, 5)
	require.NoError(t, err)

	it := v.Iterator()
	require.False(t, it.HasPrevious())
	var visited []int
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		visited = append(visited, e)
		if e == 3 {
			require.NoError(t, it.Remove())
		}
	}
	require.Equal(t, []int{2, 3, 4}, visited)
	require.Equal(t, 2, it.NextIndex())

	e, err := it.Previous()
	require.NoError(t, err)
	require.Equal(t, 4, e)

	Expect(t, s, 1, 2, 4, 5)
	ExpectView(t, v, 2, 4)
}
