package polynomial

import (
	"math/rand"
	"testing"

	"github.com/lambdaclass/lambda-moon-math/fft"
	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/stretchr/testify/require"
)

type poly17 = Polynomial[field.Fp17, *field.Fp17]

// f17 builds a polynomial over F17 from integer coefficients.
func f17(coeffs ...int64) poly17 {
	return New(field.Vector[field.Fp17](coeffs...)...)
}

func randomPoly[E any, P field.Element[E]](rng *rand.Rand, n int) Polynomial[E, P] {
	coeffs := make([]E, n)
	for i := range coeffs {
		P(&coeffs[i]).SetUint64(rng.Uint64())
	}
	return New[E, P](coeffs...)
}

// engineConfigs covers every decimation on both CPU backends. The parallel
// one starts at size 4 so the four-step path runs on small inputs too.
func engineConfigs() map[string]fft.Config {
	configs := make(map[string]fft.Config)
	for _, decimation := range []fft.Decimation{fft.NR, fft.RN} {
		sequential := fft.DefaultConfig()
		sequential.Backend = fft.BackendSequential
		sequential.Decimation = decimation
		configs["sequential/"+decimation.String()] = sequential

		parallel := fft.DefaultConfig()
		parallel.Backend = fft.BackendAuto
		parallel.Decimation = decimation
		parallel.Workers = 3
		parallel.ParallelThreshold = 4
		configs["parallel/"+decimation.String()] = parallel
	}
	return configs
}

func newTestContext[E any, P field.Element[E]](t testing.TB, f *field.Field[E, P], fftCfg fft.Config, cfg Config) *Context[E, P] {
	t.Helper()

	engine, err := fft.NewEngine(fft.NewRegistry(f, nil), fftCfg)
	require.NoError(t, err)
	ctx, err := NewContext(engine, cfg)
	require.NoError(t, err)
	return ctx
}

func requireEqualPolys[E any, P field.Element[E]](t testing.TB, expected, actual Polynomial[E, P]) {
	t.Helper()
	require.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}
