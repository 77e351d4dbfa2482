package fft

import (
	"fmt"
	"runtime"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/pool"
	"golang.org/x/sync/errgroup"
)

// Strategy runs a transform described by a Plan over values, in place.
//
// Every strategy produces exactly the same output for the same input and
// plan; they only differ in how the work is scheduled.
type Strategy[E any] interface {
	Name() string
	Transform(values []E, plan Plan) error
}

const (
	sequentialName  = "sequential"
	parallelName    = "parallel"
	acceleratorName = "accelerator"
)

// Sequential runs the whole butterfly network on the calling goroutine.
type Sequential[E any, P field.Element[E]] struct {
	registry *Registry[E, P]
}

func NewSequential[E any, P field.Element[E]](registry *Registry[E, P]) *Sequential[E, P] {
	return &Sequential[E, P]{registry: registry}
}

func (s *Sequential[E, P]) Name() string { return sequentialName }

func (s *Sequential[E, P]) Transform(values []E, plan Plan) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	table, err := s.registry.Twiddles(uint64(len(values)), plan.Decimation.TwiddleOrdering(), plan.Direction)
	if err != nil {
		return err
	}
	return Butterfly[E, P](values, table, plan)
}

// Parallel splits a transform of n = n1*n2 points into n2 transforms of n1
// points and n1 transforms of n2 points (the four-step method), and spreads
// those over a bounded number of goroutines.
//
// n1 is 2^floor(log2(n)/2). The split only depends on n, so the output does
// not depend on the number of workers.
type Parallel[E any, P field.Element[E]] struct {
	registry   *Registry[E, P]
	sequential *Sequential[E, P]
	workers    int
	scratch    *pool.Slices[E]
}

// NewParallel returns a four-step strategy using at most workers goroutines.
// workers <= 0 means runtime.GOMAXPROCS(0).
func NewParallel[E any, P field.Element[E]](registry *Registry[E, P], workers int) *Parallel[E, P] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Parallel[E, P]{
		registry:   registry,
		sequential: NewSequential(registry),
		workers:    workers,
		scratch:    pool.NewSlices[E](),
	}
}

func (s *Parallel[E, P]) Name() string { return parallelName }

// Workers returns the goroutine limit of the strategy.
func (s *Parallel[E, P]) Workers() int { return s.workers }

func (s *Parallel[E, P]) Transform(values []E, plan Plan) error {
	n := uint64(len(values))
	if n < 4 {
		return s.sequential.Transform(values, plan)
	}
	logN, err := checkSize(s.registry.field, n)
	if err != nil {
		return err
	}
	if plan.Radix != Radix2 && plan.Radix != Radix4 {
		return fmt.Errorf("%w: radix %d", ErrInvalidConfig, plan.Radix)
	}

	n1 := uint64(1) << (logN / 2)
	n2 := n / n1

	twiddles, err := s.registry.Twiddles(n, Natural, plan.Direction)
	if err != nil {
		return err
	}
	colTable, err := s.registry.Twiddles(n1, Natural, plan.Direction)
	if err != nil {
		return err
	}
	rowTable, err := s.registry.Twiddles(n2, Natural, plan.Direction)
	if err != nil {
		return err
	}
	// The sub-transforms run natural in, natural out.
	sub := Plan{Radix: plan.Radix, Decimation: RN, Direction: plan.Direction}

	matrix, err := s.scratch.Get(int(n))
	if err != nil {
		return err
	}
	defer s.scratch.Put(matrix)
	m := *matrix

	if plan.Decimation == RN {
		BitReverse(values)
	}

	// Column j2 holds values[j1*n2 + j2]. Its transform, multiplied by
	// ω^(j2*k1), lands in row k1 of the matrix.
	err = s.fanOut(int(n2), func(j2 int) error {
		column, err := s.scratch.Get(int(n1))
		if err != nil {
			return err
		}
		defer s.scratch.Put(column)
		col := *column

		for j1 := range col {
			col[j1] = values[j1*int(n2)+j2]
		}
		BitReverse(col)
		if err := Butterfly[E, P](col, colTable, sub); err != nil {
			return err
		}
		for k1 := range col {
			w := twiddleAt[E, P](twiddles.Values, uint64(j2*k1))
			P(&m[k1*int(n2)+j2]).Mul(&col[k1], &w)
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = s.fanOut(int(n1), func(k1 int) error {
		row := m[k1*int(n2) : (k1+1)*int(n2)]
		BitReverse(row)
		return Butterfly[E, P](row, rowTable, sub)
	})
	if err != nil {
		return err
	}

	// Transpose: element k2 of row k1 is X[k1 + n1*k2].
	for k1 := 0; k1 < int(n1); k1++ {
		for k2 := 0; k2 < int(n2); k2++ {
			values[k1+int(n1)*k2] = m[k1*int(n2)+k2]
		}
	}

	if plan.Decimation == NR {
		BitReverse(values)
	}
	return nil
}

// fanOut calls fn(0), ..., fn(count-1) on at most s.workers goroutines.
func (s *Parallel[E, P]) fanOut(count int, fn func(i int) error) error {
	var errG errgroup.Group
	errG.SetLimit(s.workers)
	for i := 0; i < count; i++ {
		i := i
		errG.Go(func() error {
			return fn(i)
		})
	}
	return errG.Wait()
}

// twiddleAt returns ω^e for e < n from a natural table of the first n/2
// powers, using ω^(n/2) = -1.
func twiddleAt[E any, P field.Element[E]](tw []E, e uint64) E {
	half := uint64(len(tw))
	if e < half {
		return tw[e]
	}
	var w E
	P(&w).Neg(&tw[e-half])
	return w
}

// Accelerator is a device (or any other out-of-process engine) able to run a
// butterfly network. It receives the same twiddle table the sequential path
// would use.
type Accelerator[E any] interface {
	Name() string
	Available() bool
	Transform(values []E, table *TwiddleTable[E], plan Plan) error
}

// DetectAccelerator looks for a usable accelerator. This build carries no
// device bindings, so it always reports ErrNoAccelerator; callers with their
// own device pass it to Engine.WithAccelerator instead.
func DetectAccelerator[E any]() (Accelerator[E], error) {
	return nil, ErrNoAccelerator
}

// Accelerated hands transforms to an Accelerator.
//
// The accelerator works on a copy of the input, so a failed run leaves values
// untouched and the caller can retry on another strategy.
type Accelerated[E any, P field.Element[E]] struct {
	registry    *Registry[E, P]
	accelerator Accelerator[E]
	scratch     *pool.Slices[E]
}

func NewAccelerated[E any, P field.Element[E]](registry *Registry[E, P], accelerator Accelerator[E]) *Accelerated[E, P] {
	return &Accelerated[E, P]{
		registry:    registry,
		accelerator: accelerator,
		scratch:     pool.NewSlices[E](),
	}
}

func (s *Accelerated[E, P]) Name() string { return acceleratorName }

func (s *Accelerated[E, P]) Transform(values []E, plan Plan) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	if !s.accelerator.Available() {
		return fmt.Errorf("%w: %s is not available", ErrNoAccelerator, s.accelerator.Name())
	}
	table, err := s.registry.Twiddles(uint64(len(values)), plan.Decimation.TwiddleOrdering(), plan.Direction)
	if err != nil {
		return err
	}

	buf, err := s.scratch.Get(len(values))
	if err != nil {
		return err
	}
	defer s.scratch.Put(buf)
	copy(*buf, values)

	if err := s.accelerator.Transform(*buf, table, plan); err != nil {
		return fmt.Errorf("accelerator %s: %w", s.accelerator.Name(), err)
	}
	copy(values, *buf)
	return nil
}

var (
	_ Strategy[field.Fp17] = (*Sequential[field.Fp17, *field.Fp17])(nil)
	_ Strategy[field.Fp17] = (*Parallel[field.Fp17, *field.Fp17])(nil)
	_ Strategy[field.Fp17] = (*Accelerated[field.Fp17, *field.Fp17])(nil)
)
