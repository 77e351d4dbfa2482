package polynomial

// Div performs long division and returns quotient and remainder, with
// p == quotient*d + remainder and deg remainder < deg d.
func (p Polynomial[E, P]) Div(d Polynomial[E, P]) (Polynomial[E, P], Polynomial[E, P], error) {
	if d.IsZero() {
		return Zero[E, P](), Zero[E, P](), ErrDivisionByZero
	}
	if p.Degree() < d.Degree() {
		return Zero[E, P](), p, nil
	}

	leadInv := d.LeadingCoefficient()
	P(&leadInv).Inverse(&leadInv)

	rem := cloneSlice(p.coeffs)
	quotient := make([]E, p.Degree()-d.Degree()+1)
	degD := d.Degree()

	var tmp E
	for i := len(quotient) - 1; i >= 0; i-- {
		q := P(&quotient[i])
		q.Mul(&rem[i+degD], &leadInv)
		if q.IsZero() {
			continue
		}
		for j := range d.coeffs {
			P(&tmp).Mul(&quotient[i], &d.coeffs[j])
			P(&rem[i+j]).Sub(&rem[i+j], &tmp)
		}
	}

	return fromOwned[E, P](quotient), fromOwned[E, P](rem[:degD]), nil
}

// RuffiniDiv divides p by (x - b) with synthetic division and returns the
// quotient and the remainder, which is p(b).
//
// The result is the same as p.Div(New(-b, 1)).
func (p Polynomial[E, P]) RuffiniDiv(b E) (Polynomial[E, P], E) {
	var remainder E
	if p.IsZero() {
		return p, remainder
	}

	// clone the slice so we do not modify the coefficients in place
	quotient := cloneSlice(p.coeffs)

	var t E
	for i := len(quotient) - 2; i >= 0; i-- {
		P(&t).Mul(&quotient[i+1], &b)
		P(&quotient[i]).Add(&quotient[i], &t)
	}

	// the remainder ends up in the constant slot and the quotient, of degree
	// deg(p)-1, in the rest
	remainder = quotient[0]
	return fromOwned[E, P](quotient[1:]), remainder
}

// DivideByLinear computes p / (x - b) and returns the quotient, dropping the
// remainder. It is meant for b a known root of p.
func (p Polynomial[E, P]) DivideByLinear(b E) Polynomial[E, P] {
	quotient, _ := p.RuffiniDiv(b)
	return quotient
}
