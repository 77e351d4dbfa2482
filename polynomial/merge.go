package polynomial

import "github.com/lambdaclass/lambda-moon-math/field"

// Term is a single coefficient of a sparse polynomial.
type Term[E any] struct {
	Degree uint
	Coeff  E
}

// FromTerms builds a polynomial from sparse terms. Terms sharing a degree are
// summed.
func FromTerms[E any, P field.Element[E]](terms []Term[E]) Polynomial[E, P] {
	return MergeTerms[E, P](terms)
}

// Merge sums partial polynomials coefficient by coefficient. Coefficients
// missing from the shorter inputs count as zero.
func Merge[E any, P field.Element[E]](polys ...Polynomial[E, P]) Polynomial[E, P] {
	length := 0
	for _, p := range polys {
		length = max(length, p.Len())
	}

	res := make([]E, length)
	for _, p := range polys {
		for i := range p.coeffs {
			P(&res[i]).Add(&res[i], &p.coeffs[i])
		}
	}
	return fromOwned[E, P](res)
}

// MergeTerms is Merge for inputs given as sparse term lists.
func MergeTerms[E any, P field.Element[E]](parts ...[]Term[E]) Polynomial[E, P] {
	length := uint(0)
	for _, terms := range parts {
		for _, term := range terms {
			length = max(length, term.Degree+1)
		}
	}

	res := make([]E, length)
	for _, terms := range parts {
		for i := range terms {
			d := terms[i].Degree
			P(&res[d]).Add(&res[d], &terms[i].Coeff)
		}
	}
	return fromOwned[E, P](res)
}

// Terms returns the nonzero coefficients of p as sparse terms, in ascending
// degree.
func (p Polynomial[E, P]) Terms() []Term[E] {
	var terms []Term[E]
	for i := range p.coeffs {
		if !P(&p.coeffs[i]).IsZero() {
			terms = append(terms, Term[E]{Degree: uint(i), Coeff: p.coeffs[i]})
		}
	}
	return terms
}

// BreakInParts splits p into k polynomials p_0..p_{k-1} such that
// p(x) = sum of x^j * p_j(x^k). Coefficient i of p lands in part i mod k at
// index i / k. It returns nil when k is zero.
func (p Polynomial[E, P]) BreakInParts(k uint) []Polynomial[E, P] {
	if k == 0 {
		return nil
	}

	partLen := (uint(len(p.coeffs)) + k - 1) / k
	parts := make([][]E, k)
	for j := range parts {
		parts[j] = make([]E, partLen)
	}
	for i := range p.coeffs {
		parts[uint(i)%k][uint(i)/k] = p.coeffs[i]
	}

	res := make([]Polynomial[E, P], k)
	for j := range parts {
		res[j] = fromOwned[E, P](parts[j])
	}
	return res
}
