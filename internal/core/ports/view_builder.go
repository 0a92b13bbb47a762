package ports

import "go.trai.ch/starview/internal/core/domain"

// ViewBuilder constructs presentation-ready derived views.
//
//go:generate go run go.uber.org/mock/mockgen -source=view_builder.go -destination=mocks/mock_view_builder.go -package=mocks
type ViewBuilder interface {
	// Build projects points into a derived view for the given role and projection.
	// An empty points slice yields a view with zero rows.
	Build(points []domain.Observation, role domain.SeriesRole, projection domain.Projection, summary string) *domain.DerivedView
}
