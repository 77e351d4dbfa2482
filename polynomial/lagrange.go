package polynomial

import (
	"fmt"

	"github.com/lambdaclass/lambda-moon-math/field"
)

// Vanishing returns the monic polynomial whose roots are the given points,
// the product of (x - root). It is 1 when roots is empty.
func Vanishing[E any, P field.Element[E]](roots []E) Polynomial[E, P] {
	result := make([]E, 1, len(roots)+1)
	P(&result[0]).SetOne()

	var tmp E
	for i := range roots {
		// Multiply by (x - root) in place, from the top coefficient down.
		result = append(result, result[len(result)-1])
		for j := len(result) - 2; j > 0; j-- {
			P(&tmp).Mul(&result[j], &roots[i])
			P(&result[j]).Sub(&result[j-1], &tmp)
		}
		P(&result[0]).Mul(&result[0], &roots[i])
		P(&result[0]).Neg(&result[0])
	}
	return Polynomial[E, P]{coeffs: result}
}

// LagrangeInterpolate returns the unique polynomial of degree < len(xs) with
// p(xs[i]) == ys[i].
func LagrangeInterpolate[E any, P field.Element[E]](xs, ys []E) (Polynomial[E, P], error) {
	if len(xs) == 0 {
		return Zero[E, P](), ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return Zero[E, P](), fmt.Errorf("%w: %d points, %d values", ErrMismatchedLengths, len(xs), len(ys))
	}

	vanishing := Vanishing[E, P](xs)
	res := make([]E, len(xs))

	for i := range xs {
		// basis(x) = vanishing(x) / (x - xs[i]), scaled so basis(xs[i]) == 1
		basis := vanishing.DivideByLinear(xs[i])
		denominator := basis.Evaluate(xs[i])
		if P(&denominator).IsZero() {
			return Zero[E, P](), fmt.Errorf("%w: point %d appears more than once", ErrDuplicatePoints, i)
		}

		var scale E
		P(&scale).Inverse(&denominator)
		P(&scale).Mul(&scale, &ys[i])

		var tmp E
		for j := range basis.coeffs {
			P(&tmp).Mul(&basis.coeffs[j], &scale)
			P(&res[j]).Add(&res[j], &tmp)
		}
	}

	return fromOwned[E, P](res), nil
}
