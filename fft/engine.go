package fft

import (
	"errors"
	"fmt"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/lambdaclass/lambda-moon-math/internal/utils"
	"github.com/rs/zerolog"
)

// Engine is the entry point for running transforms. It validates sizes,
// picks a Strategy from its Config and falls back to the sequential strategy
// when the configured one cannot run.
//
// An Engine is safe for concurrent use.
type Engine[E any, P field.Element[E]] struct {
	registry *Registry[E, P]
	cfg      Config
	logger   zerolog.Logger
	metrics  *Metrics

	sequential  *Sequential[E, P]
	parallel    *Parallel[E, P]
	accelerated *Accelerated[E, P]
}

// NewEngine returns an engine drawing its twiddle tables from registry.
//
// With BackendAccelerator, NewEngine looks for an accelerator with
// DetectAccelerator and logs a warning if there is none; use WithAccelerator
// to supply one.
func NewEngine[E any, P field.Element[E]](registry *Registry[E, P], cfg Config) (*Engine[E, P], error) {
	if registry == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	e := &Engine[E, P]{
		registry:   registry,
		cfg:        cfg,
		logger:     logger,
		metrics:    cfg.Metrics,
		sequential: NewSequential(registry),
		parallel:   NewParallel(registry, cfg.Workers),
	}
	e.cfg.Workers = e.parallel.Workers()

	if cfg.Backend == BackendAccelerator || cfg.Backend == BackendAuto {
		if acc, err := DetectAccelerator[E](); err == nil {
			e.accelerated = NewAccelerated(registry, acc)
		} else if cfg.Backend == BackendAccelerator {
			e.logger.Warn().Err(err).Str("backend", cfg.Backend.String()).Msg("falling back to sequential transforms")
		}
	}
	if cfg.Backend == BackendParallel && e.cfg.Workers <= 1 {
		e.logger.Warn().Int("workers", e.cfg.Workers).Str("backend", cfg.Backend.String()).Msg("single worker, falling back to sequential transforms")
	}

	e.logger.Debug().
		Str("field", registry.Field().Name()).
		Str("backend", cfg.Backend.String()).
		Str("radix", cfg.Radix.String()).
		Str("decimation", cfg.Decimation.String()).
		Int("workers", e.cfg.Workers).
		Msg("fft engine ready")

	return e, nil
}

// WithAccelerator returns a copy of the engine that can use acc. The copy
// shares the registry of e.
func (e *Engine[E, P]) WithAccelerator(acc Accelerator[E]) *Engine[E, P] {
	clone := *e
	clone.accelerated = nil
	if acc != nil {
		clone.accelerated = NewAccelerated(e.registry, acc)
		if !acc.Available() && e.cfg.Backend == BackendAccelerator {
			clone.logger.Warn().Str("accelerator", acc.Name()).Msg("accelerator is not available, falling back to sequential transforms")
		}
	}
	return &clone
}

// Registry returns the twiddle cache the engine uses.
func (e *Engine[E, P]) Registry() *Registry[E, P] {
	return e.registry
}

// Field returns the field the engine transforms over.
func (e *Engine[E, P]) Field() *field.Field[E, P] {
	return e.registry.Field()
}

// Config returns the configuration of the engine, with Workers resolved.
func (e *Engine[E, P]) Config() Config {
	return e.cfg
}

// Plan returns the plan the engine uses for a transform.
func (e *Engine[E, P]) Plan(direction Direction, decimation Decimation) Plan {
	radix := Radix4
	if e.cfg.Radix == RadixForce2 {
		radix = Radix2
	}
	return Plan{Radix: radix, Decimation: decimation, Direction: direction}
}

// StrategyFor returns the strategy a transform of n points runs on.
func (e *Engine[E, P]) StrategyFor(n uint64) Strategy[E] {
	strategy, _ := e.resolve(n)
	return strategy
}

// resolve applies the selection policy. When the configured backend cannot
// run, it also returns the name of that backend.
func (e *Engine[E, P]) resolve(n uint64) (Strategy[E], string) {
	accelerated := e.accelerated != nil && e.accelerated.accelerator.Available()
	parallel := e.cfg.Workers > 1

	switch e.cfg.Backend {
	case BackendSequential:
		return e.sequential, ""
	case BackendParallel:
		if !parallel {
			return e.sequential, parallelName
		}
		return e.parallel, ""
	case BackendAccelerator:
		if !accelerated {
			return e.sequential, acceleratorName
		}
		return e.accelerated, ""
	default:
		if accelerated && n >= e.cfg.AcceleratorThreshold {
			return e.accelerated, ""
		}
		if parallel && n >= e.cfg.ParallelThreshold {
			return e.parallel, ""
		}
		return e.sequential, ""
	}
}

// Transform runs a forward or inverse transform over values in place.
//
// With NR decimation the input is in natural order and the output in
// bit-reversed order; with RN it is the other way round. The output is not
// scaled: an inverse transform must still be multiplied by 1/n.
func (e *Engine[E, P]) Transform(values []E, direction Direction, decimation Decimation) error {
	n := uint64(len(values))
	if n == 0 {
		return ErrEmptyInput
	}
	logN, err := checkSize(e.registry.field, n)
	if err != nil {
		return err
	}
	plan := e.Plan(direction, decimation)

	strategy, degradedFrom := e.resolve(n)
	if degradedFrom != "" {
		e.metrics.fallback(degradedFrom)
	}

	err = strategy.Transform(values, plan)
	if err != nil && strategy.Name() == acceleratorName {
		e.logger.Warn().
			Err(err).
			Str("backend", acceleratorName).
			Str("reason", "transform failed").
			Uint64("size", n).
			Msg("falling back to sequential transform")
		e.metrics.fallback(acceleratorName)

		strategy = e.sequential
		err = strategy.Transform(values, plan)
	}
	if err != nil {
		return err
	}

	e.metrics.transform(strategy.Name(), logN)
	return nil
}

// Evaluate runs a transform with natural order input and output, using the
// configured decimation and one bit-reversal pass.
func (e *Engine[E, P]) Evaluate(values []E, direction Direction) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	if !utils.IsPowerOfTwo(uint64(len(values))) {
		return fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, len(values))
	}

	if e.cfg.Decimation == RN {
		BitReverse(values)
		err := e.Transform(values, direction, RN)
		if err != nil {
			// Undo the permutation so the caller gets its input back.
			BitReverse(values)
		}
		return err
	}

	if err := e.Transform(values, direction, NR); err != nil {
		return err
	}
	BitReverse(values)
	return nil
}

// IsDomainError reports whether err was caused by a size the field cannot
// transform.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}
