// Package pool provides type-safe generic wrappers around sync.Pool.
//
// The FFT strategies borrow scratch vectors from here instead of allocating
// a fresh one for every transform.
//
// Example usage:
//
//	scratch := pool.NewSlices[fr.Element]()
//
//	func transform(values []fr.Element) error {
//	    buf, err := scratch.Get(len(values))
//	    if err != nil {
//	        return err
//	    }
//	    defer scratch.Put(buf)
//
//	    // Use *buf...
//	    return nil
//	}
package pool

import (
	"fmt"
	"sync"
)

// Get retrieves a value from the pool with type safety.
// Returns an error if:
//   - the pool is nil
//   - the pool returns nil
//   - the pool returns a value of the wrong type
func Get[T any](p *sync.Pool) (T, error) {
	var zero T

	if p == nil {
		return zero, ErrPoolIsNil
	}

	v := p.Get()
	if v == nil {
		return zero, ErrPoolReturnedNil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected %T, got %T",
			ErrPoolWrongType, zero, v)
	}

	return typed, nil
}

// Put returns a value to the pool.
// Silently ignores nil pool to avoid panics in defer statements.
func Put[T any](p *sync.Pool, v T) {
	if p == nil {
		return
	}
	p.Put(v)
}

// Slices hands out reusable []T buffers of a requested length.
//
// Buffers are passed around as *[]T so that putting them back does not
// allocate. The contents of a buffer returned by Get are unspecified.
type Slices[T any] struct {
	pool sync.Pool
}

// NewSlices returns an empty slice pool.
func NewSlices[T any]() *Slices[T] {
	return &Slices[T]{
		pool: sync.Pool{
			New: func() any {
				buf := make([]T, 0)
				return &buf
			},
		},
	}
}

// Get returns a buffer of length n, growing a pooled one if needed.
func (s *Slices[T]) Get(n int) (*[]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	buf, err := Get[*[]T](&s.pool)
	if err != nil {
		return nil, err
	}
	if cap(*buf) < n {
		*buf = make([]T, n)
	}
	*buf = (*buf)[:n]
	return buf, nil
}

// Put gives a buffer back. A nil buffer is ignored.
func (s *Slices[T]) Put(buf *[]T) {
	if buf == nil {
		return
	}
	Put(&s.pool, buf)
}
