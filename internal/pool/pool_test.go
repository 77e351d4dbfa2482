package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPool_HappyPath(t *testing.T) {
	type testBuffer struct {
		data []int
	}

	p := &sync.Pool{
		New: func() any {
			return &testBuffer{data: make([]int, 10)}
		},
	}

	buf, err := Get[*testBuffer](p)
	require.NoError(t, err)
	require.NotNil(t, buf)
	require.Len(t, buf.data, 10)

	Put(p, buf)
}

func TestPool_WrongType(t *testing.T) {
	p := &sync.Pool{
		New: func() any {
			return "wrong type"
		},
	}

	_, err := Get[*int](p)
	require.ErrorIs(t, err, ErrPoolWrongType)
	require.ErrorContains(t, err, "expected *int, got string")
}

func TestPool_ReturnsNil(t *testing.T) {
	p := &sync.Pool{
		New: func() any {
			return nil
		},
	}

	_, err := Get[*int](p)
	require.ErrorIs(t, err, ErrPoolReturnedNil)
}

func TestPool_NilPool(t *testing.T) {
	_, err := Get[*int](nil)
	require.ErrorIs(t, err, ErrPoolIsNil)

	// Put should not panic with nil pool
	require.NotPanics(t, func() {
		Put[*int](nil, nil)
	})
}

func TestSlices_Lengths(t *testing.T) {
	s := NewSlices[uint64]()

	buf, err := s.Get(16)
	require.NoError(t, err)
	require.Len(t, *buf, 16)
	s.Put(buf)

	// A smaller request reuses capacity but still has the right length.
	buf, err = s.Get(4)
	require.NoError(t, err)
	require.Len(t, *buf, 4)
	s.Put(buf)

	buf, err = s.Get(0)
	require.NoError(t, err)
	require.Empty(t, *buf)
	s.Put(buf)

	_, err = s.Get(-1)
	require.ErrorIs(t, err, ErrNegativeLength)

	require.NotPanics(t, func() {
		s.Put(nil)
	})
}

func TestSlices_Concurrent(t *testing.T) {
	s := NewSlices[int]()

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 1; i < 100; i++ {
				buf, err := s.Get(i)
				if err != nil {
					return err
				}
				for j := range *buf {
					(*buf)[j] = j
				}
				s.Put(buf)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
