// Package metrics exports derived view cache activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/starview/internal/core/domain"
)

// Recorder implements ports.ViewMetrics with Prometheus collectors.
type Recorder struct {
	gatherer prometheus.Gatherer
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	clears   prometheus.Counter
	entries  prometheus.Gauge
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "starview_view_cache_hits_total",
		Help: "Derived view lookups served from the cache",
	}, []string{"role", "projection"})

	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "starview_view_cache_misses_total",
		Help: "Derived views built and stored by the cache",
	}, []string{"role", "projection"})

	clears := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "starview_view_cache_clears_total",
		Help: "Full cache clears caused by dataset loads",
	})

	entries := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "starview_view_cache_entries",
		Help: "Derived views currently held by the cache",
	})

	reg.MustRegister(hits, misses, clears, entries)

	return &Recorder{
		gatherer: reg,
		hits:     hits,
		misses:   misses,
		clears:   clears,
		entries:  entries,
	}
}

// ObserveHit records a lookup served from the cache.
func (r *Recorder) ObserveHit(role domain.SeriesRole, projection domain.Projection) {
	r.hits.WithLabelValues(role.String(), projection.String()).Inc()
}

// ObserveMiss records a view built and stored by the cache.
func (r *Recorder) ObserveMiss(role domain.SeriesRole, projection domain.Projection) {
	r.misses.WithLabelValues(role.String(), projection.String()).Inc()
	r.entries.Inc()
}

// ObserveClear records a clear that dropped n entries.
func (r *Recorder) ObserveClear(n int) {
	r.clears.Inc()
	r.entries.Sub(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
