package ports

import "go.trai.ch/starview/internal/core/domain"

// PhaseAssigner computes observation phases for a phase-folding context.
//
//go:generate go run go.uber.org/mock/mockgen -source=phase_assigner.go -destination=mocks/mock_phase_assigner.go -package=mocks
type PhaseAssigner interface {
	// Assign returns a copy of points with each phase set to the fractional part of
	// (time - epoch) / period, normalized into [0, 1). The input is not modified.
	// It returns domain.ErrInvalidParameter when the period is zero or either value is not finite.
	Assign(points []domain.Observation, epoch, period float64) ([]domain.Observation, error)
}
