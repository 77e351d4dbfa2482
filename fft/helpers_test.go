package fft

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/stretchr/testify/require"
)

// naiveDFT evaluates values, read as polynomial coefficients, on every power
// of the size-n root of unity. It is quadratic and only meant as a reference.
func naiveDFT[E any, P field.Element[E]](t testing.TB, f *field.Field[E, P], values []E, direction Direction) []E {
	t.Helper()

	domain, err := NewDomain(f, uint64(len(values)))
	require.NoError(t, err)
	root := domain.Root(direction)

	out := make([]E, len(values))
	var x E
	P(&x).SetOne()
	for i := range out {
		// Horner at x = root^i.
		var acc E
		for j := len(values) - 1; j >= 0; j-- {
			P(&acc).Mul(&acc, &x)
			P(&acc).Add(&acc, &values[j])
		}
		out[i] = acc
		P(&x).Mul(&x, &root)
	}
	return out
}

// runPlan transforms a copy of values with the sequential butterfly network,
// taking and returning natural order.
func runPlan[E any, P field.Element[E]](t testing.TB, f *field.Field[E, P], values []E, plan Plan) []E {
	t.Helper()

	n := uint64(len(values))
	table, err := Twiddles(f, n, plan.Decimation.TwiddleOrdering(), plan.Direction)
	require.NoError(t, err)

	out := make([]E, n)
	copy(out, values)
	if plan.Decimation == RN {
		BitReverse(out)
	}
	require.NoError(t, Butterfly[E, P](out, table, plan))
	if plan.Decimation == NR {
		BitReverse(out)
	}
	return out
}

func allPlans() []Plan {
	var plans []Plan
	for _, radix := range []Radix{Radix2, Radix4} {
		for _, decimation := range []Decimation{NR, RN} {
			for _, direction := range []Direction{Forward, Inverse} {
				plans = append(plans, Plan{Radix: radix, Decimation: decimation, Direction: direction})
			}
		}
	}
	return plans
}

func randomVector[E any, P field.Element[E]](rng *rand.Rand, n int) []E {
	out := make([]E, n)
	for i := range out {
		P(&out[i]).SetUint64(rng.Uint64())
	}
	return out
}

// maxVector returns n copies of p-1, the largest canonical value.
func maxVector[E any, P field.Element[E]](n int) []E {
	out := make([]E, n)
	for i := range out {
		P(&out[i]).SetInt64(-1)
	}
	return out
}

// canonical prints x as an integer in [0, p).
func canonical[E any, P field.Element[E]](f *field.Field[E, P], x E) string {
	v, ok := new(big.Int).SetString(P(&x).String(), 10)
	if !ok {
		panic("element does not print as a decimal integer")
	}
	return v.Mod(v, f.Modulus()).String()
}

func fromStrings[E any, P field.Element[E]](t testing.TB, f *field.Field[E, P], values []string) []E {
	t.Helper()

	out := make([]E, len(values))
	for i, s := range values {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok, "%q is not a decimal integer", s)
		// Vectors hold canonical values only.
		require.True(t, v.Sign() >= 0 && v.Cmp(f.Modulus()) < 0, "%s is not canonical in %s", s, f.Name())
		_, err := P(&out[i]).SetString(s)
		require.NoError(t, err)
	}
	return out
}

func requireEqualVectors[E any, P field.Element[E]](t testing.TB, expected, actual []E, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, field.Equal[E, P](expected, actual), msgAndArgs...)
}

func newTestRegistry[E any, P field.Element[E]](f *field.Field[E, P]) *Registry[E, P] {
	return NewRegistry(f, nil)
}

func newTestEngine[E any, P field.Element[E]](t testing.TB, f *field.Field[E, P], cfg Config) *Engine[E, P] {
	t.Helper()

	engine, err := NewEngine(newTestRegistry(f), cfg)
	require.NoError(t, err)
	return engine
}
