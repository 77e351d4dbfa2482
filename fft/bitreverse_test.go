package fft

import (
	"math"
	"math/bits"
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestBitReversal(t *testing.T) {
	powInt := func(x, y int) int {
		return int(math.Pow(float64(x), float64(y)))
	}

	// We only go up to 20 because we don't want a long running test
	for i := 0; i < 20; i++ {
		size := powInt(2, i)

		scalars := testScalars(size)
		reversed := bitReversalPermutation(scalars)

		BitReverse(scalars)

		for i := 0; i < size; i++ {
			if !reversed[i].Equal(&scalars[i]) {
				t.Error("bit reversal methods are not consistent")
			}
		}
	}
}

func TestBitReverseSmallLists(t *testing.T) {
	var empty []int
	BitReverse(empty)
	require.Empty(t, empty)

	one := []int{7}
	BitReverse(one)
	require.Equal(t, []int{7}, one)

	eight := []int{0, 1, 2, 3, 4, 5, 6, 7}
	BitReverse(eight)
	require.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, eight)

	require.Panics(t, func() {
		BitReverse([]int{1, 2, 3})
	})
}

func TestBitReverseIndex(t *testing.T) {
	require.Equal(t, uint64(0), BitReverseIndex(0, 1))
	require.Equal(t, uint64(1), BitReverseIndex(1, 2))
	require.Equal(t, uint64(4), BitReverseIndex(1, 8))
	require.Equal(t, uint64(3), BitReverseIndex(6, 8))
	require.Equal(t, uint64(1)<<31, BitReverseIndex(1, 1<<32))

	require.Panics(t, func() {
		BitReverseIndex(1, 6)
	})
}

func TestBitReverseInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("bit reversing twice is the identity", prop.ForAll(
		func(logSize uint8, seed int64) bool {
			size := 1 << logSize
			list := make([]int64, size)
			for i := range list {
				list[i] = seed ^ int64(i*2654435761)
			}
			original := append([]int64(nil), list...)

			BitReverse(list)
			BitReverse(list)

			for i := range list {
				if list[i] != original[i] {
					return false
				}
			}
			return true
		},
		gen.UInt8Range(0, 14),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// This is simply another way to do the bit reversal,
// if these were incorrect then integration tests would
// fail.
func bitReversalPermutation(l []goldilocks.Element) []goldilocks.Element {
	size := uint64(len(l))
	if !utils.IsPowerOfTwo(size) {
		panic("size of slice must be a power of two")
	}

	out := make([]goldilocks.Element, size)

	for i := range l {
		j := bits.Reverse64(uint64(i)) >> (65 - bits.Len64(size))
		out[i] = l[j]
	}

	return out
}

func testScalars(size int) []goldilocks.Element {
	res := make([]goldilocks.Element, size)
	for i := 0; i < size; i++ {
		res[i].SetUint64(uint64(i))
	}
	return res
}
