package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Frontend labels used on query metrics.
const (
	FrontendWeb = "web"
	FrontendAPI = "api"
)

// Metrics holds the lookup collectors for one registry.
type Metrics struct {
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
	matches  prometheus.Histogram
	words    prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// Tests pass a fresh prometheus.NewRegistry so repeated calls do not collide.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordglob_queries_total",
			Help: "Total lookups served by front end",
		}, []string{"frontend"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordglob_query_duration_seconds",
			Help:    "Time spent running a lookup",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		matches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordglob_query_matches",
			Help:    "Number of words matched per lookup",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		}),
		words: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wordglob_dictionary_words",
			Help: "Words in the loaded dictionary",
		}),
	}
	reg.MustRegister(m.queries, m.duration, m.matches, m.words)
	return m
}

// ObserveQuery records one finished lookup.
func (m *Metrics) ObserveQuery(frontend string, elapsed time.Duration, matched int) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(frontend).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.matches.Observe(float64(matched))
}

// SetDictionarySize sets the dictionary gauge.
func (m *Metrics) SetDictionarySize(n int) {
	if m == nil {
		return
	}
	m.words.Set(float64(n))
}
