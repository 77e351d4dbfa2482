// Package polynomial implements univariate polynomials in coefficient form
// over the fields of the field package, together with FFT based evaluation,
// interpolation and multiplication through an fft.Engine.
package polynomial

import (
	"strconv"
	"strings"

	"github.com/lambdaclass/lambda-moon-math/field"
)

// Polynomial holds coefficients in ascending order: index i is the
// coefficient of x^i.
//
// Trailing zero coefficients are never stored, so the zero polynomial has no
// coefficients at all. Polynomials are values; no method modifies its
// receiver or its arguments.
type Polynomial[E any, P field.Element[E]] struct {
	coeffs []E
}

// New returns the polynomial with the given coefficients. The slice is copied
// and trailing zeros are dropped.
func New[E any, P field.Element[E]](coeffs ...E) Polynomial[E, P] {
	return fromOwned[E, P](cloneSlice(coeffs))
}

// Zero returns the zero polynomial.
func Zero[E any, P field.Element[E]]() Polynomial[E, P] {
	return Polynomial[E, P]{}
}

// Monomial returns coeff * x^degree.
func Monomial[E any, P field.Element[E]](coeff E, degree uint) Polynomial[E, P] {
	if P(&coeff).IsZero() {
		return Zero[E, P]()
	}
	coeffs := make([]E, degree+1)
	coeffs[degree] = coeff
	return Polynomial[E, P]{coeffs: coeffs}
}

// fromOwned wraps coeffs without copying them.
func fromOwned[E any, P field.Element[E]](coeffs []E) Polynomial[E, P] {
	return Polynomial[E, P]{coeffs: trim[E, P](coeffs)}
}

func trim[E any, P field.Element[E]](coeffs []E) []E {
	n := len(coeffs)
	for n > 0 && P(&coeffs[n-1]).IsZero() {
		n--
	}
	if n == 0 {
		return nil
	}
	return coeffs[:n]
}

// cloneSlice creates a copy of the original slice
func cloneSlice[E any](original []E) []E {
	if original == nil {
		return nil
	}
	cloned := make([]E, len(original))
	copy(cloned, original)
	return cloned
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Polynomial[E, P]) Degree() int {
	return len(p.coeffs) - 1
}

// Len returns the number of stored coefficients, Degree()+1.
func (p Polynomial[E, P]) Len() int {
	return len(p.coeffs)
}

// Coefficients returns a copy of the coefficients.
func (p Polynomial[E, P]) Coefficients() []E {
	return cloneSlice(p.coeffs)
}

// Coefficient returns the coefficient of x^i, which is zero past the degree.
func (p Polynomial[E, P]) Coefficient(i int) E {
	var c E
	if i >= 0 && i < len(p.coeffs) {
		c = p.coeffs[i]
	}
	return c
}

// LeadingCoefficient returns the coefficient of x^Degree(), zero for the zero
// polynomial.
func (p Polynomial[E, P]) LeadingCoefficient() E {
	return p.Coefficient(p.Degree())
}

func (p Polynomial[E, P]) IsZero() bool {
	return len(p.coeffs) == 0
}

func (p Polynomial[E, P]) Equal(q Polynomial[E, P]) bool {
	return field.Equal[E, P](p.coeffs, q.coeffs)
}

// String prints p from the highest degree down, e.g. "4*x^3 + 2*x + 1".
func (p Polynomial[E, P]) String() string {
	if p.IsZero() {
		return "0"
	}

	var terms []string
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := P(&p.coeffs[i])
		if c.IsZero() {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, c.String())
		case i == 1:
			terms = append(terms, c.String()+"*x")
		default:
			terms = append(terms, c.String()+"*x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}
