package ports

import "go.trai.ch/starview/internal/core/domain"

// ViewMetrics receives derived view cache events.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type ViewMetrics interface {
	// ObserveHit records a lookup served from the cache.
	ObserveHit(role domain.SeriesRole, projection domain.Projection)
	// ObserveMiss records a lookup that built and stored a new view.
	ObserveMiss(role domain.SeriesRole, projection domain.Projection)
	// ObserveClear records a full cache clear that dropped n entries.
	ObserveClear(n int)
}
