// Package metrics exposes Prometheus collectors for the compliance pipeline.
// A nil *Compliance is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup results.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Compliance records check outcomes, perception origins and cache usage.
type Compliance struct {
	checks       *prometheus.CounterVec
	duration     prometheus.Histogram
	perceptions  *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// NewCompliance creates the collectors and registers them on reg.
func NewCompliance(reg prometheus.Registerer) (*Compliance, error) {
	m := &Compliance{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compliance_checks_total",
				Help: "Total number of compliance checks by overall status.",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "compliance_check_duration_seconds",
			Help:    "Time spent evaluating a submission.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		perceptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compliance_perceptions_total",
				Help: "Chunk perceptions by how the model answer was obtained.",
			},
			[]string{"origin"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compliance_cache_lookups_total",
				Help: "Report cache lookups by result.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{m.checks, m.duration, m.perceptions, m.cacheLookups} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveCheck records a finished check.
func (m *Compliance) ObserveCheck(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(status).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// ObservePerception records the origin of one chunk perception.
func (m *Compliance) ObservePerception(origin string) {
	if m == nil {
		return
	}
	m.perceptions.WithLabelValues(origin).Inc()
}

// ObserveCache records a cache lookup.
func (m *Compliance) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
