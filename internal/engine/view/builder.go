// Package view builds presentation-ready derived views over model series.
package view

import (
	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
)

var _ ports.ViewBuilder = (*Builder)(nil)

// Builder implements ports.ViewBuilder. It is stateless.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build projects points into a table of rows labelled for role and projection.
// The phase of each point is copied as-is, so phase-folded callers must pass phased points.
func (b *Builder) Build(
	points []domain.Observation,
	role domain.SeriesRole,
	projection domain.Projection,
	summary string,
) *domain.DerivedView {
	rows := make([]domain.ViewRow, len(points))
	for i, p := range points {
		rows[i] = domain.ViewRow{
			Time:        p.Time,
			Phase:       p.Phase,
			Value:       p.Magnitude,
			Uncertainty: p.Uncertainty,
		}
	}

	return &domain.DerivedView{
		Role:       role,
		Projection: projection,
		Columns:    Columns(role, projection),
		Rows:       rows,
		Summary:    summary,
	}
}

// Columns returns the column labels for a role and projection.
func Columns(role domain.SeriesRole, projection domain.Projection) []string {
	if projection == domain.ProjectionPhaseFolded {
		return []string{"Time", "Phase", role.ValueColumn(), "Uncertainty"}
	}
	return []string{"Time", role.ValueColumn(), "Uncertainty"}
}
