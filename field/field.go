// Package field describes the prime fields the FFT engine and the polynomial
// layer run over.
//
// The arithmetic itself is supplied by the element types (gnark-crypto
// generated fields satisfy Element as they are). This package only pins down
// the method set the engine relies on and the two-adic structure needed to
// find roots of unity.
package field

import (
	"fmt"
	"math/big"
)

// Element is the method set a field element must expose. E is the value type
// and the constraint is satisfied by *E, which is how gnark-crypto elements
// (fr.Element, goldilocks.Element, ...) are written.
//
// Every method must leave its receiver canonically reduced.
type Element[E any] interface {
	*E
	Set(x *E) *E
	SetZero() *E
	SetOne() *E
	SetUint64(v uint64) *E
	SetInt64(v int64) *E
	SetString(s string) (*E, error)
	Add(x, y *E) *E
	Sub(x, y *E) *E
	Mul(x, y *E) *E
	Square(x *E) *E
	Neg(x *E) *E
	Inverse(x *E) *E
	Exp(x E, k *big.Int) *E
	Equal(x *E) bool
	IsZero() bool
	IsOne() bool
	String() string
}

// Field is a prime field together with a generator of its largest
// multiplicative subgroup of power-of-two order.
type Field[E any, P Element[E]] struct {
	name    string
	modulus *big.Int
	// The multiplicative group has a subgroup of order 2^twoAdicity,
	// generated by generator.
	twoAdicity uint8
	generator  E
}

// New returns a field descriptor. The generator must have order exactly
// 2^twoAdicity.
func New[E any, P Element[E]](name string, modulus *big.Int, twoAdicity uint8, generator E) (*Field[E, P], error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidField)
	}

	// generator^(2^(s-1)) must be -1, so that squaring once more gives 1
	// and no smaller power of two does.
	acc := generator
	for i := uint8(0); i < twoAdicity; i++ {
		if P(&acc).IsOne() {
			return nil, fmt.Errorf("%w: generator of %s has order 2^%d, expected 2^%d", ErrInvalidGenerator, name, i, twoAdicity)
		}
		P(&acc).Square(&acc)
	}
	if !P(&acc).IsOne() {
		return nil, fmt.Errorf("%w: generator of %s does not have order 2^%d", ErrInvalidGenerator, name, twoAdicity)
	}

	return &Field[E, P]{
		name:       name,
		modulus:    new(big.Int).Set(modulus),
		twoAdicity: twoAdicity,
		generator:  generator,
	}, nil
}

// Name returns a human readable name for the field.
func (f *Field[E, P]) Name() string {
	return f.name
}

// Modulus returns a copy of the field's prime.
func (f *Field[E, P]) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// MaxLogOrder returns s such that 2^s is the largest power-of-two order for
// which the field has a root of unity.
func (f *Field[E, P]) MaxLogOrder() uint8 {
	return f.twoAdicity
}

// RootOfUnity returns a primitive 2^logOrder'th root of unity.
//
// All roots are derived from the same generator, so that
// RootOfUnity(k)^2 == RootOfUnity(k-1). The FFT engine relies on this when it
// splits a transform into smaller ones.
func (f *Field[E, P]) RootOfUnity(logOrder uint8) (E, error) {
	if logOrder > f.twoAdicity {
		var zero E
		return zero, fmt.Errorf("%w: order 2^%d requested, %s supports up to 2^%d", ErrRootOfUnity, logOrder, f.name, f.twoAdicity)
	}

	root := f.generator
	for i := logOrder; i < f.twoAdicity; i++ {
		P(&root).Square(&root)
	}
	return root, nil
}

// InverseRootOfUnity returns the inverse of RootOfUnity(logOrder).
func (f *Field[E, P]) InverseRootOfUnity(logOrder uint8) (E, error) {
	root, err := f.RootOfUnity(logOrder)
	if err != nil {
		return root, err
	}
	P(&root).Inverse(&root)
	return root, nil
}

// Zero returns the additive identity.
func Zero[E any, P Element[E]]() E {
	var z E
	P(&z).SetZero()
	return z
}

// One returns the multiplicative identity.
func One[E any, P Element[E]]() E {
	var z E
	P(&z).SetOne()
	return z
}

// FromUint64 returns v reduced into the field.
func FromUint64[E any, P Element[E]](v uint64) E {
	var z E
	P(&z).SetUint64(v)
	return z
}

// FromInt64 returns v reduced into the field, negative values included.
func FromInt64[E any, P Element[E]](v int64) E {
	var z E
	P(&z).SetInt64(v)
	return z
}

// Vector converts a list of integers into field elements.
func Vector[E any, P Element[E]](values ...int64) []E {
	res := make([]E, len(values))
	for i, v := range values {
		P(&res[i]).SetInt64(v)
	}
	return res
}

// Equal reports whether a and b hold the same elements.
func Equal[E any, P Element[E]](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !P(&a[i]).Equal(&b[i]) {
			return false
		}
	}
	return true
}
