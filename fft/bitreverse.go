package fft

import (
	"math/bits"

	"github.com/lambdaclass/lambda-moon-math/internal/utils"
)

// BitReverse applies the bit-reversal permutation to list in place.
//
// The length of list must be a power of two. Lists of length 0 and 1 are
// left untouched. Applying it twice gives back the original list.
func BitReverse[K interface{}](list []K) {
	n := uint64(len(list))
	if n <= 1 {
		return
	}

	for i := uint64(0); i < n; i++ {
		// Find index irev, such that i and irev get swapped
		irev := BitReverseIndex(i, n)
		if irev > i {
			list[i], list[irev] = list[irev], list[i]
		}
	}
}

// BitReverseIndex reverses the low log2(size) bits of k.
func BitReverseIndex(k, size uint64) uint64 {
	if !utils.IsPowerOfTwo(size) {
		panic("size given to BitReverseIndex must be a power of two")
	}
	if size == 1 {
		return 0
	}

	// The standard library's bits.Reverse64 inverts its input as a 64-bit unsigned integer.
	// However, we need to invert it as a log2(size)-bit integer, so we need to correct this by
	// shifting appropriately.
	shiftCorrection := uint64(64 - bits.TrailingZeros64(size))
	return bits.Reverse64(k) >> shiftCorrection
}
