package polynomial

// Evaluate evaluates p at x with Horner's rule.
func (p Polynomial[E, P]) Evaluate(x E) E {
	var result E

	for i := len(p.coeffs) - 1; i >= 0; i-- {
		P(&result).Mul(&result, &x)
		P(&result).Add(&result, &p.coeffs[i])
	}

	return result
}

// EvaluateSlice evaluates p at every point of xs. The points need no
// structure; see Context.EvaluateFFT for evaluation over a root of unity
// domain.
func (p Polynomial[E, P]) EvaluateSlice(xs []E) []E {
	evals := make([]E, len(xs))
	for i := range xs {
		evals[i] = p.Evaluate(xs[i])
	}
	return evals
}
