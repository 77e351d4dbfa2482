package polynomial

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/lambdaclass/lambda-moon-math/fft"
	"github.com/lambdaclass/lambda-moon-math/field"
)

// BenchmarkMul compares schoolbook and FFT multiplication around
// DefaultConfig's MulFFTThreshold.
func BenchmarkMul(b *testing.B) {
	fftCfg := fft.DefaultConfig()
	fftCfg.Backend = fft.BackendSequential
	ctx := newTestContext(b, field.BLS12381, fftCfg, DefaultConfig())
	rng := rand.New(rand.NewSource(0))

	for _, logDegree := range []int{4, 5, 6, 7, 8, 10} {
		degree := 1 << logDegree
		x := randomPoly[fr.Element](rng, degree+1)
		y := randomPoly[fr.Element](rng, degree+1)

		b.Run("naive/degree_2^"+strconv.Itoa(logDegree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = x.Mul(y)
			}
		})

		b.Run("fft/degree_2^"+strconv.Itoa(logDegree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ctx.MulFFT(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	ctx := newTestContext(b, field.BLS12381, fft.DefaultConfig(), DefaultConfig())
	rng := rand.New(rand.NewSource(1))

	for _, logSize := range []int{8, 12} {
		size := uint64(1) << logSize
		p := randomPoly[fr.Element](rng, int(size))
		points, err := ctx.Points(size, field.One[fr.Element]())
		if err != nil {
			b.Fatal(err)
		}

		b.Run("fft/size_2^"+strconv.Itoa(logSize), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ctx.EvaluateFFT(p); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run("horner/size_2^"+strconv.Itoa(logSize), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = p.EvaluateSlice(points)
			}
		})
	}
}
