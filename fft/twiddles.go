package fft

import (
	"fmt"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
)

// TwiddleTable holds the first Size/2 powers of the size-Size root of unity
// (or of its inverse), in the given ordering.
//
// Tables are immutable once built, which is what lets the Registry hand the
// same table to any number of goroutines.
type TwiddleTable[E any] struct {
	Size      uint64
	Ordering  Ordering
	Direction Direction
	Values    []E
}

// Twiddles computes a twiddle table for a transform of the given size.
//
// Values[i] is ω^i for Natural ordering and ω^bitrev(i) for BitReversed
// ordering, where bitrev runs over log2(size/2) bits and ω is the primitive
// size'th root of unity of f (its inverse for the Inverse direction).
//
// A size of 1 gives an empty table.
func Twiddles[E any, P field.Element[E]](f *field.Field[E, P], size uint64, ordering Ordering, direction Direction) (*TwiddleTable[E], error) {
	logSize, err := checkSize(f, size)
	if err != nil {
		return nil, err
	}

	var root E
	if direction == Inverse {
		root, err = f.InverseRootOfUnity(logSize)
	} else {
		root, err = f.RootOfUnity(logSize)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedSize, err)
	}

	values := utils.ComputePowers[E, P](root, uint(size/2))
	if ordering == BitReversed {
		BitReverse(values)
	}

	return &TwiddleTable[E]{
		Size:      size,
		Ordering:  ordering,
		Direction: direction,
		Values:    values,
	}, nil
}

// checkSize returns log2(size), or a domain error if the field has no
// multiplicative subgroup of that size.
func checkSize[E any, P field.Element[E]](f *field.Field[E, P], size uint64) (uint8, error) {
	if !utils.IsPowerOfTwo(size) {
		return 0, fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, size)
	}
	logSize := utils.Log2(size)
	if logSize > f.MaxLogOrder() {
		return 0, fmt.Errorf("%w: 2^%d points requested, %s has roots of unity up to order 2^%d: %w",
			ErrUnsupportedSize, logSize, f.Name(), f.MaxLogOrder(), field.ErrRootOfUnity)
	}
	return logSize, nil
}
