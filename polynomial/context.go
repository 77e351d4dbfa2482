package polynomial

import (
	"fmt"
	"math"

	"github.com/lambdaclass/lambda-moon-math/fft"
	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
)

// Context runs the FFT based operations on polynomials: evaluation over a
// root of unity domain or a coset of it, interpolation from such evaluations
// and multiplication.
//
// A Context is safe for concurrent use as long as its engine is.
type Context[E any, P field.Element[E]] struct {
	engine *fft.Engine[E, P]
	cfg    Config
}

func NewContext[E any, P field.Element[E]](engine *fft.Engine[E, P], cfg Config) (*Context[E, P], error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: nil engine", fft.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Context[E, P]{engine: engine, cfg: cfg}, nil
}

func (c *Context[E, P]) Engine() *fft.Engine[E, P] {
	return c.engine
}

func (c *Context[E, P]) Config() Config {
	return c.cfg
}

// EvaluateFFT evaluates p over the smallest power of two domain that holds
// its coefficients. The i'th evaluation is p(w^i) for the domain generator w.
func (c *Context[E, P]) EvaluateFFT(p Polynomial[E, P]) ([]E, error) {
	return c.EvaluateFFTWith(p, 1, 1)
}

// EvaluateFFTWith evaluates p over the smallest power of two domain of at
// least max(p.Len()*blowupFactor, minDomainSize) points. A blowup factor of 0
// counts as 1.
func (c *Context[E, P]) EvaluateFFTWith(p Polynomial[E, P], blowupFactor, minDomainSize uint64) ([]E, error) {
	blowupFactor = max(blowupFactor, 1)
	length := uint64(p.Len())
	if length > 0 && blowupFactor > math.MaxUint64/length {
		return nil, fmt.Errorf("%w: %d coefficients with blowup factor %d", fft.ErrUnsupportedSize, length, blowupFactor)
	}
	size, err := c.domainSize(max(length*blowupFactor, minDomainSize))
	if err != nil {
		return nil, err
	}

	// Pad to the domain size
	values := make([]E, size)
	copy(values, p.coeffs)

	if err := c.engine.Evaluate(values, fft.Forward); err != nil {
		return nil, err
	}
	return values, nil
}

// domainSize rounds n up to a power of two and checks that the field has a
// domain of that size before anything is allocated for it.
func (c *Context[E, P]) domainSize(n uint64) (uint64, error) {
	if n > utils.MaxPowerOfTwo {
		return 0, fmt.Errorf("%w: no power of two holds %d points", fft.ErrUnsupportedSize, n)
	}
	size := utils.NextPowerOfTwo(n)
	if maxLog := c.engine.Field().MaxLogOrder(); utils.Log2(size) > maxLog {
		return 0, fmt.Errorf("%w: %d points requested, %s supports up to 2^%d", fft.ErrUnsupportedSize, size, c.engine.Field().Name(), maxLog)
	}
	return size, nil
}

// EvaluateOffsetFFT evaluates p over the coset offset*<w>, that is the i'th
// evaluation is p(offset * w^i). The domain is sized as in EvaluateFFTWith.
func (c *Context[E, P]) EvaluateOffsetFFT(p Polynomial[E, P], blowupFactor, minDomainSize uint64, offset E) ([]E, error) {
	return c.EvaluateFFTWith(p.Scale(offset), blowupFactor, minDomainSize)
}

// Points returns offset * w^i for i < size, the points EvaluateOffsetFFT
// evaluates at over a domain of that size. An offset of one gives the
// domain itself.
func (c *Context[E, P]) Points(size uint64, offset E) ([]E, error) {
	domain, err := c.engine.Registry().Domain(size)
	if err != nil {
		return nil, err
	}
	return utils.ComputeScaledPowers[E, P](offset, domain.Generator, uint(size)), nil
}

// InterpolateFFT returns the polynomial of degree < len(evals) taking the
// value evals[i] at w^i. len(evals) must be a power of two.
func (c *Context[E, P]) InterpolateFFT(evals []E) (Polynomial[E, P], error) {
	if len(evals) == 0 {
		return Zero[E, P](), ErrEmptyInput
	}

	values := cloneSlice(evals)
	if err := c.engine.Evaluate(values, fft.Inverse); err != nil {
		return Zero[E, P](), err
	}

	domain, err := c.engine.Registry().Domain(uint64(len(values)))
	if err != nil {
		return Zero[E, P](), err
	}
	for i := range values {
		P(&values[i]).Mul(&values[i], &domain.CardinalityInv)
	}
	return fromOwned[E, P](values), nil
}

// InterpolateOffsetFFT is InterpolateFFT for evaluations over the coset
// offset*<w>. The offset must be nonzero.
func (c *Context[E, P]) InterpolateOffsetFFT(evals []E, offset E) (Polynomial[E, P], error) {
	if P(&offset).IsZero() {
		return Zero[E, P](), fmt.Errorf("%w: zero coset offset", ErrDivisionByZero)
	}

	scaled, err := c.InterpolateFFT(evals)
	if err != nil {
		return Zero[E, P](), err
	}

	var offsetInv E
	P(&offsetInv).Inverse(&offset)
	return scaled.Scale(offsetInv), nil
}

// MulFFT multiplies a and b by evaluating both over a domain large enough for
// the product, multiplying pointwise and interpolating back.
func (c *Context[E, P]) MulFFT(a, b Polynomial[E, P]) (Polynomial[E, P], error) {
	if a.IsZero() || b.IsZero() {
		return Zero[E, P](), nil
	}

	size, err := c.domainSize(uint64(a.Len() + b.Len() - 1))
	if err != nil {
		return Zero[E, P](), err
	}
	evalsA, err := c.EvaluateFFTWith(a, 1, size)
	if err != nil {
		return Zero[E, P](), err
	}
	evalsB, err := c.EvaluateFFTWith(b, 1, size)
	if err != nil {
		return Zero[E, P](), err
	}

	for i := range evalsA {
		P(&evalsA[i]).Mul(&evalsA[i], &evalsB[i])
	}
	return c.InterpolateFFT(evalsA)
}

// Mul multiplies a and b, through the FFT when both degrees reach
// Config.MulFFTThreshold and naively otherwise. Products too large for the
// field's FFT domains are computed naively as well.
func (c *Context[E, P]) Mul(a, b Polynomial[E, P]) (Polynomial[E, P], error) {
	if min(a.Degree(), b.Degree()) < c.cfg.MulFFTThreshold {
		return a.Mul(b), nil
	}

	product, err := c.MulFFT(a, b)
	if fft.IsDomainError(err) {
		return a.Mul(b), nil
	}
	return product, err
}
