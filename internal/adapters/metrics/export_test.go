package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/starview/internal/core/domain"
)

func (r *Recorder) Hits(role domain.SeriesRole, projection domain.Projection) prometheus.Counter {
	return r.hits.WithLabelValues(role.String(), projection.String())
}

func (r *Recorder) Misses(role domain.SeriesRole, projection domain.Projection) prometheus.Counter {
	return r.misses.WithLabelValues(role.String(), projection.String())
}

func (r *Recorder) Clears() prometheus.Counter {
	return r.clears
}

func (r *Recorder) Entries() prometheus.Gauge {
	return r.entries
}
