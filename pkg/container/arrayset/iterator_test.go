package arrayset_test

import (
	"testing"

	"github.com/graph-guard/arraycoll/pkg/container"
	"github.com/graph-guard/arraycoll/pkg/container/arrayset"
	"github.com/stretchr/testify/require"
)

func TestIteratorForwardBackward(t *testing.T) {
	s := arrayset.New(4, 1, 2, 3)
	it := s.Iterator()
	require.False(t, it.HasPrevious())
	require.Equal(t, 0, it.NextIndex())
	require.Equal(t, -1, it.PreviousIndex())

	var forward []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		forward = append(forward, v)
	}
	require.Equal(t, []int{1, 2, 3}, forward)
	_, err := it.Next()
	require.ErrorIs(t, err, container.ErrNoSuchElement)

	var backward []int
	for it.HasPrevious() {
		v, err := it.Previous()
		require.NoError(t, err)
		backward = append(backward, v)
	}
	require.Equal(t, []int{3, 2, 1}, backward)
	_, err = it.Previous()
	require.ErrorIs(t, err, container.ErrNoSuchElement)
}

func TestIteratorNextPreviousSameElement(t *testing.T) {
	s := arrayset.New(4, 10, 20)
	it := s.Iterator()
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 10, v)
	v, err = it.Previous()
	require.NoError(t, err)
	require.Equal(t, 10, v)
}

func TestIteratorRemoveAfterNext(t *testing.T) {
	s := arrayset.New(8, 0, 1, 2, 3, 4, 5)
	it := s.Iterator()
	var visited []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		visited = append(visited, v)
		if v%2 == 1 {
			require.NoError(t, it.Remove())
		}
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, visited)
	Expect(t, s, 0, 2, 4)
}

func TestIteratorRemoveAfterPrevious(t *testing.T) {
	s := arrayset.New(4, 1, 2, 3)
	it := s.IteratorFrom(3)
	v, err := it.Previous()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.NoError(t, it.Remove())

	v, err = it.Previous()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	Expect(t, s, 1, 2)
}

func TestIteratorIllegalState(t *testing.T) {
	s := arrayset.New(4, 1, 2)
	it := s.Iterator()
	require.ErrorIs(t, it.Remove(), container.ErrIllegalState)
	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())
	require.ErrorIs(t, it.Remove(), container.ErrIllegalState)
	Expect(t, s, 2)
}

func TestIteratorUnsupported(t *testing.T) {
	s := arrayset.New(4, 1, 2)
	it := s.Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	require.ErrorIs(t, it.Set(5), container.ErrUnsupported)
	require.ErrorIs(t, it.Add(5), container.ErrUnsupported)
	Expect(t, s, 1, 2)
}

func TestIteratorFrom(t *testing.T) {
	s := arrayset.New(4, 10, 20, 30)
	for _, td := range []struct {
		name         string
		from         int
		expectNext   []int
		expectHasPrv bool
	}{
		{"before_all", 5, []int{10, 20, 30}, false},
		{"present", 20, []int{30}, true},
		{"absent_mid", 25, []int{30}, true},
		{"after_all", 35, nil, true},
	} {
		t.Run(td.name, func(t *testing.T) {
			it := s.IteratorFrom(td.from)
			require.Equal(t, td.expectHasPrv, it.HasPrevious())
			var next []int
			for it.HasNext() {
				v, err := it.Next()
				require.NoError(t, err)
				next = append(next, v)
			}
			require.Equal(t, td.expectNext, next)
		})
	}
}
