package utils

import (
	"math"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/stretchr/testify/require"
)

func TestIsPow2(t *testing.T) {
	powInt := func(x, y uint64) uint64 {
		return uint64(math.Pow(float64(x), float64(y)))
	}

	// 0 is not a power of two
	ok := IsPowerOfTwo(0)
	if ok {
		t.Error("zero is not a power of two")
	}

	// Numbers of the form 2^x are all powers of two
	// Do this up to x=63, since we are using u64
	for i := 0; i < 63; i++ {
		pow2 := powInt(2, uint64(i))
		ok := IsPowerOfTwo(pow2)
		if !ok {
			t.Error("numbers of the form 2^x are powers of two")
		}
	}
	// Numbers of the form 2^x -1 are not powers of two
	// from x=2 until x=63
	for i := 2; i < 63; i++ {
		pow2Minus1 := powInt(2, uint64(i)) - 1
		ok := IsPowerOfTwo(pow2Minus1)
		if ok {
			t.Error("numbers of the form 2^x -1 are not powers of two from x=2")
		}
	}
}

func TestNextPowerOfTwoAndLog(t *testing.T) {
	cases := []struct {
		in, next uint64
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {1000, 1024}, {1 << 40, 1 << 40},
		{MaxPowerOfTwo - 1, MaxPowerOfTwo}, {MaxPowerOfTwo, MaxPowerOfTwo},
	}
	for _, c := range cases {
		require.Equal(t, c.next, NextPowerOfTwo(c.in), "in=%d", c.in)
	}

	require.Equal(t, uint8(0), Log2(1))
	require.Equal(t, uint8(1), Log2(2))
	require.Equal(t, uint8(1), Log2(3))
	require.Equal(t, uint8(10), Log2(1024))
	require.Equal(t, uint8(63), Log2(math.MaxUint64))
}

func TestComputePowersBaseOne(t *testing.T) {
	one := fr.One()

	powers := ComputePowers(one, 10)
	for _, pow := range powers {
		pow := pow
		if !pow.Equal(&one) {
			t.Error("powers should all be 1")
		}
	}
}

func TestComputePowersZero(t *testing.T) {
	x := fr.NewElement(1234)

	powers := ComputePowers(x, 0)
	// When given a number of 0
	// this will return an empty slice
	if len(powers) != 0 {
		t.Error("number of powers to compute was `0`, but got more than `0` powers computed")
	}
	if powers == nil {
		t.Error("Returned nil slice when asked to compute 0 powers of x")
	}
}

func TestComputePowersSmoke(t *testing.T) {
	var base fr.Element
	base.SetInt64(123)

	powers := ComputePowers(base, 16)

	for index, pow := range powers {
		var expected fr.Element
		expected.Exp(base, big.NewInt(int64(index)))

		powCopy := pow
		if !expected.Equal(&powCopy) {
			t.Error("incorrect exponentiation result")
		}
	}
}

func TestComputeScaledPowers(t *testing.T) {
	powers := ComputeScaledPowers(field.Fp17(3), field.Fp17(2), 5)
	require.Equal(t, []field.Fp17{3, 6, 12, 7, 14}, powers)
}

func TestReverse(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}
	Reverse(list)
	require.Equal(t, []int{5, 4, 3, 2, 1}, list)

	even := []int{1, 2}
	Reverse(even)
	require.Equal(t, []int{2, 1}, even)

	var empty []int
	Reverse(empty)
	require.Empty(t, empty)
}

func TestBatchInvert(t *testing.T) {
	values := field.Vector[fr.Element](1, 2, 3, -4, 12345)
	inverses, err := BatchInvert[fr.Element](values)
	require.NoError(t, err)
	require.Len(t, inverses, len(values))
	for i := range values {
		var prod fr.Element
		prod.Mul(&values[i], &inverses[i])
		require.True(t, prod.IsOne(), "element %d", i)
	}

	empty, err := BatchInvert[fr.Element](nil)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = BatchInvert[fr.Element](field.Vector[fr.Element](1, 0, 2))
	require.ErrorIs(t, err, ErrNotInvertible)

	// Over F17 every nonzero element has an inverse.
	all := make([]field.Fp17, field.Fp17Modulus-1)
	for i := range all {
		all[i] = field.Fp17(i + 1)
	}
	inv17, err := BatchInvert[field.Fp17](all)
	require.NoError(t, err)
	for i := range all {
		var prod field.Fp17
		prod.Mul(&all[i], &inv17[i])
		require.Equal(t, field.Fp17(1), prod)
	}
}
