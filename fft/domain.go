package fft

import (
	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
)

// Domain is a struct defining the set of points that polynomials are evaluated over.
// To enable efficient FFT-based algorithms, these points are chosen as 2^i'th roots of unity and we precompute and store
// certain values related to that inside the struct.
type Domain[E any, P field.Element[E]] struct {
	// Size of the domain. This must be a power of 2 no larger than
	// 2^MaxLogOrder of the field.
	Cardinality    uint64
	LogCardinality uint8
	// Inverse of the size of the domain as
	// a field element. This is useful for
	// inverse FFTs.
	CardinalityInv E
	// Generator for the multiplicative subgroup
	// Not a primitive element (i.e. generator) for the *whole* field.
	//
	// This generator will have order equal to the
	// cardinality of the domain.
	Generator E
	// Inverse of the Generator. This is precomputed
	// and useful for inverse FFTs.
	GeneratorInv E
}

// NewDomain returns a new domain with the desired number of points.
//
// We only support powers of 2 for size, up to the two-adicity of the field.
func NewDomain[E any, P field.Element[E]](f *field.Field[E, P], size uint64) (*Domain[E, P], error) {
	logSize, err := checkSize(f, size)
	if err != nil {
		return nil, err
	}

	domain := &Domain[E, P]{
		Cardinality:    size,
		LogCardinality: logSize,
	}

	domain.Generator, err = f.RootOfUnity(logSize)
	if err != nil {
		return nil, err
	}
	P(&domain.GeneratorInv).Inverse(&domain.Generator)

	P(&domain.CardinalityInv).SetUint64(size)
	P(&domain.CardinalityInv).Inverse(&domain.CardinalityInv)

	return domain, nil
}

// Root returns the generator for a forward transform and its inverse
// otherwise.
func (d *Domain[E, P]) Root(direction Direction) E {
	if direction == Inverse {
		return d.GeneratorInv
	}
	return d.Generator
}

// Roots lists every element of the subgroup in natural order, starting at 1.
func (d *Domain[E, P]) Roots() []E {
	return utils.ComputePowers[E, P](d.Generator, uint(d.Cardinality))
}
