package field

import (
	"fmt"
	"math/big"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

var (
	// BLS12381 is the scalar field of BLS12-381, the field KZG commitments
	// over that curve are computed in.
	BLS12381 = mustNew[blsfr.Element]("bls12-381/fr", blsfr.Modulus(), 32, blsTwoAdicGenerator())

	// BN254 is the scalar field of BN254.
	BN254 = mustNew[bnfr.Element]("bn254/fr", bnfr.Modulus(), 28, twoAdicGenerator[bnfr.Element](bnfr.Modulus(), 5, 28))

	// Goldilocks is the prime field of order 2^64 - 2^32 + 1.
	Goldilocks = mustNew[goldilocks.Element]("goldilocks", goldilocks.Modulus(), 32, twoAdicGenerator[goldilocks.Element](goldilocks.Modulus(), 7, 32))

	// F17 is the prime field of order 17. Its order-4 root of unity is 4.
	F17 = mustNew[Fp17]("f17", big.NewInt(Fp17Modulus), 4, Fp17(10))
)

// blsTwoAdicGenerator returns the generator of the largest 2-adic subgroup of
// the BLS12-381 scalar field. This particular element has order 2^32.
func blsTwoAdicGenerator() blsfr.Element {
	var rootOfUnity blsfr.Element
	_, err := rootOfUnity.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131")
	if err != nil {
		panic("failed to initialize root of unity")
	}
	return rootOfUnity
}

// twoAdicGenerator raises a generator of the whole multiplicative group to
// (p-1)/2^s, which leaves an element of order exactly 2^s.
func twoAdicGenerator[E any, P Element[E]](modulus *big.Int, multiplicativeGenerator uint64, s uint8) E {
	expo := new(big.Int).Sub(modulus, big.NewInt(1))
	expo.Rsh(expo, uint(s))

	var g E
	P(&g).SetUint64(multiplicativeGenerator)
	P(&g).Exp(g, expo)
	return g
}

func mustNew[E any, P Element[E]](name string, modulus *big.Int, twoAdicity uint8, generator E) *Field[E, P] {
	f, err := New[E, P](name, modulus, twoAdicity, generator)
	if err != nil {
		panic(fmt.Sprintf("field %s: %v", name, err))
	}
	return f
}
