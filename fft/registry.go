package fft

import (
	"sync"

	"github.com/lambdaclass/lambda-moon-math/field"
	"github.com/rs/zerolog"
)

type twiddleKey struct {
	logSize   uint8
	ordering  Ordering
	direction Direction
}

type twiddleEntry[E any] struct {
	once  sync.Once
	table *TwiddleTable[E]
	err   error
}

type domainEntry[E any, P field.Element[E]] struct {
	once   sync.Once
	domain *Domain[E, P]
	err    error
}

// Registry caches twiddle tables and domains for one field.
//
// A table is computed at most once per (size, ordering, direction), even when
// many goroutines ask for it at the same time; the others block until it is
// ready. Requests for sizes the field cannot serve fail before touching the
// cache, so errors are never cached. Cached values are never mutated.
//
// A Registry is meant to be built once and shared by every Engine working
// over the same field.
type Registry[E any, P field.Element[E]] struct {
	field   *field.Field[E, P]
	metrics *Metrics
	logger  zerolog.Logger

	mu       sync.RWMutex
	twiddles map[twiddleKey]*twiddleEntry[E]
	domains  map[uint8]*domainEntry[E, P]
}

// NewRegistry returns an empty cache for f. metrics may be nil.
func NewRegistry[E any, P field.Element[E]](f *field.Field[E, P], metrics *Metrics) *Registry[E, P] {
	return &Registry[E, P]{
		field:    f,
		metrics:  metrics,
		logger:   zerolog.Nop(),
		twiddles: make(map[twiddleKey]*twiddleEntry[E]),
		domains:  make(map[uint8]*domainEntry[E, P]),
	}
}

// WithLogger sets the logger cache misses are reported to. It must be called
// before the registry is shared.
func (r *Registry[E, P]) WithLogger(logger zerolog.Logger) *Registry[E, P] {
	r.logger = logger
	return r
}

// Field returns the field the registry computes tables for.
func (r *Registry[E, P]) Field() *field.Field[E, P] {
	return r.field
}

// Twiddles returns the cached table for the given parameters, computing it on
// first use.
func (r *Registry[E, P]) Twiddles(size uint64, ordering Ordering, direction Direction) (*TwiddleTable[E], error) {
	logSize, err := checkSize(r.field, size)
	if err != nil {
		return nil, err
	}
	key := twiddleKey{logSize: logSize, ordering: ordering, direction: direction}

	r.mu.RLock()
	entry, ok := r.twiddles[key]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		// Another goroutine may have inserted it between the two locks.
		entry, ok = r.twiddles[key]
		if !ok {
			entry = &twiddleEntry[E]{}
			r.twiddles[key] = entry
		}
		r.mu.Unlock()
	}

	if ok {
		r.metrics.cacheHit()
	} else {
		r.metrics.cacheMiss()
	}

	entry.once.Do(func() {
		r.logger.Debug().
			Str("field", r.field.Name()).
			Uint64("size", size).
			Stringer("ordering", ordering).
			Stringer("direction", direction).
			Msg("computing twiddle table")
		entry.table, entry.err = Twiddles(r.field, size, ordering, direction)
	})
	if entry.err != nil {
		r.mu.Lock()
		delete(r.twiddles, key)
		r.mu.Unlock()
		return nil, entry.err
	}
	return entry.table, nil
}

// Domain returns the cached domain of the given size.
func (r *Registry[E, P]) Domain(size uint64) (*Domain[E, P], error) {
	logSize, err := checkSize(r.field, size)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	entry, ok := r.domains[logSize]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		entry, ok = r.domains[logSize]
		if !ok {
			entry = &domainEntry[E, P]{}
			r.domains[logSize] = entry
		}
		r.mu.Unlock()
	}

	entry.once.Do(func() {
		entry.domain, entry.err = NewDomain(r.field, size)
	})
	if entry.err != nil {
		r.mu.Lock()
		delete(r.domains, logSize)
		r.mu.Unlock()
		return nil, entry.err
	}
	return entry.domain, nil
}

// Len returns the number of cached twiddle tables.
func (r *Registry[E, P]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.twiddles)
}
