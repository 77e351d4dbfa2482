package polynomial

import (
	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
)

// Add returns p + q.
func (p Polynomial[E, P]) Add(q Polynomial[E, P]) Polynomial[E, P] {
	long, short := p.coeffs, q.coeffs
	if len(short) > len(long) {
		long, short = short, long
	}

	sum := cloneSlice(long)
	for i := range short {
		P(&sum[i]).Add(&sum[i], &short[i])
	}
	return fromOwned[E, P](sum)
}

// Sub returns p - q.
func (p Polynomial[E, P]) Sub(q Polynomial[E, P]) Polynomial[E, P] {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial[E, P]) Neg() Polynomial[E, P] {
	res := make([]E, len(p.coeffs))
	for i := range p.coeffs {
		P(&res[i]).Neg(&p.coeffs[i])
	}
	return Polynomial[E, P]{coeffs: res}
}

// ScalarMul returns s * p.
func (p Polynomial[E, P]) ScalarMul(s E) Polynomial[E, P] {
	if P(&s).IsZero() {
		return Zero[E, P]()
	}
	res := make([]E, len(p.coeffs))
	for i := range p.coeffs {
		P(&res[i]).Mul(&p.coeffs[i], &s)
	}
	return Polynomial[E, P]{coeffs: res}
}

// Mul returns p * q by schoolbook convolution. For large operands
// Context.Mul switches to FFT multiplication.
func (p Polynomial[E, P]) Mul(q Polynomial[E, P]) Polynomial[E, P] {
	if p.IsZero() || q.IsZero() {
		return Zero[E, P]()
	}

	res := make([]E, len(p.coeffs)+len(q.coeffs)-1)
	var tmp E
	for i := range p.coeffs {
		if P(&p.coeffs[i]).IsZero() {
			continue
		}
		for j := range q.coeffs {
			P(&tmp).Mul(&p.coeffs[i], &q.coeffs[j])
			P(&res[i+j]).Add(&res[i+j], &tmp)
		}
	}
	// The product of two leading coefficients is never zero in a field.
	return Polynomial[E, P]{coeffs: res}
}

// Scale returns p(s*x).
func (p Polynomial[E, P]) Scale(s E) Polynomial[E, P] {
	if p.IsZero() {
		return p
	}
	powers := utils.ComputePowers[E, P](s, uint(len(p.coeffs)))
	for i := range powers {
		P(&powers[i]).Mul(&powers[i], &p.coeffs[i])
	}
	return fromOwned[E, P](powers)
}

// Differentiate returns the formal derivative of p.
func (p Polynomial[E, P]) Differentiate() Polynomial[E, P] {
	if len(p.coeffs) <= 1 {
		return Zero[E, P]()
	}

	res := make([]E, len(p.coeffs)-1)
	for i := range res {
		k := field.FromUint64[E, P](uint64(i + 1))
		P(&res[i]).Mul(&p.coeffs[i+1], &k)
	}
	// i*c_i vanishes when the characteristic divides i.
	return fromOwned[E, P](res)
}

// Pow returns p^k, with p^0 == 1 for every p.
func (p Polynomial[E, P]) Pow(k uint) Polynomial[E, P] {
	res := New[E, P](field.One[E, P]())
	base := p
	for k > 0 {
		if k&1 == 1 {
			res = res.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	return res
}
