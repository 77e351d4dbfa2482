package fft

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports the behaviour of the twiddle cache and the dispatcher in
// Prometheus format. It tracks:
//   - twiddle cache hits and misses (counters)
//   - transforms run, per backend (counter)
//   - degradations to the sequential path, per requested backend (counter)
//   - transform sizes (histogram of log2 n)
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	transforms  *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	sizes       prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is handy in tests.
//
// Registering twice with the same registry panics, like promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "moonmath_fft_twiddle_cache_hits_total",
			Help: "Twiddle table requests served from the cache",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "moonmath_fft_twiddle_cache_misses_total",
			Help: "Twiddle table requests that had to compute the table",
		}),
		transforms: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "moonmath_fft_transforms_total",
			Help: "Transforms run, by the backend that ran them",
		}, []string{"backend"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "moonmath_fft_fallbacks_total",
			Help: "Transforms that degraded to the sequential backend, by the backend that was requested",
		}, []string{"from"}),
		sizes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "moonmath_fft_transform_size",
			Help:    "log2 of the number of points of each transform",
			Buckets: prometheus.LinearBuckets(0, 2, 17),
		}),
	}
}

func (m *Metrics) cacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) cacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

func (m *Metrics) transform(backend string, logSize uint8) {
	if m == nil {
		return
	}
	m.transforms.WithLabelValues(backend).Inc()
	m.sizes.Observe(float64(logSize))
}

func (m *Metrics) fallback(from string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(from).Inc()
}
