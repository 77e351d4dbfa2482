package utils

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/lambdaclass/lambda-moon-math/field"
)

var ErrNotInvertible = errors.New("zero has no inverse")

// Computes x^0 to x^n-1
// If n==0: an empty slice is returned
func ComputePowers[E any, P field.Element[E]](x E, n uint) []E {
	if n == 0 {
		return []E{}
	}
	return computePowers[E, P](x, n)
}

// Computes offset*x^0 to offset*x^n-1
// This function assumes that n > 0
func ComputeScaledPowers[E any, P field.Element[E]](offset, x E, n uint) []E {
	powers := make([]E, n)
	P(&powers[0]).Set(&offset)
	for i := uint(1); i < n; i++ {
		P(&powers[i]).Mul(&powers[i-1], &x)
	}
	return powers
}

// Computes x^0 to x^n-1
// This function assumes that n > 0
func computePowers[E any, P field.Element[E]](x E, n uint) []E {
	var one E
	P(&one).SetOne()
	return ComputeScaledPowers[E, P](one, x, n)
}

// Return true if `value` is a power of two
// `0` will return false
func IsPowerOfTwo(value uint64) bool {
	return value > 0 && (value&(value-1) == 0)
}

// MaxPowerOfTwo is the largest power of two a uint64 holds.
const MaxPowerOfTwo = uint64(1) << 63

// NextPowerOfTwo returns the smallest power of two that is >= value.
// 0 and 1 both map to 1. Values above MaxPowerOfTwo have no such power and
// map to 0; callers check against MaxPowerOfTwo first.
func NextPowerOfTwo(value uint64) uint64 {
	if value <= 1 {
		return 1
	}
	return 1 << bits.Len64(value-1)
}

// Log2 returns floor(log2(value)). `value` must be non-zero.
func Log2(value uint64) uint8 {
	return uint8(bits.Len64(value) - 1)
}

// BatchInvert returns the inverses of values with a single field inversion
// (Montgomery's trick). It fails if any value is zero.
func BatchInvert[E any, P field.Element[E]](values []E) ([]E, error) {
	res := make([]E, len(values))
	if len(values) == 0 {
		return res, nil
	}

	// res[i] holds the product of values[0..i-1]
	var acc E
	P(&acc).SetOne()
	for i := range values {
		if P(&values[i]).IsZero() {
			return nil, fmt.Errorf("%w: element %d", ErrNotInvertible, i)
		}
		res[i] = acc
		P(&acc).Mul(&acc, &values[i])
	}

	P(&acc).Inverse(&acc)
	for i := len(values) - 1; i >= 0; i-- {
		P(&res[i]).Mul(&res[i], &acc)
		P(&acc).Mul(&acc, &values[i])
	}
	return res, nil
}

// Reverses the list in-place
func Reverse[K interface{}](list []K) {
	last := len(list) - 1
	for i := 0; i < len(list)/2; i++ {
		list[i], list[last-i] = list[last-i], list[i]
	}
}
