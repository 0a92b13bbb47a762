// Package phase folds observation times onto a repeating cycle.
package phase

import (
	"math"

	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PhaseAssigner = (*Assigner)(nil)

// Assigner implements ports.PhaseAssigner.
type Assigner struct{}

// NewAssigner creates a new Assigner.
func NewAssigner() *Assigner {
	return &Assigner{}
}

// Assign returns a phase-tagged copy of points. It fails without a partial result when
// any point lies too many periods from the epoch to have a representable phase.
func (a *Assigner) Assign(points []domain.Observation, epoch, period float64) ([]domain.Observation, error) {
	if err := validate(epoch, period); err != nil {
		return nil, err
	}

	phases := make([]float64, len(points))
	for i, p := range points {
		c := cycles(p.Time, epoch, period)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			err := zerr.With(domain.ErrInvalidParameter, "period", period)
			err = zerr.With(err, "epoch", epoch)
			return nil, zerr.With(err, "time", p.Time)
		}
		phases[i] = fraction(c)
	}

	phased := make([]domain.Observation, len(points))
	for i, p := range points {
		p.Phase = phases[i]
		p.Phased = true
		phased[i] = p
	}
	return phased, nil
}

// Of returns the phase of time t for the given epoch and period, in [0, 1).
// The period must be non-zero and finite, and t must be a representable number of periods from epoch.
func Of(t, epoch, period float64) float64 {
	return fraction(cycles(t, epoch, period))
}

func cycles(t, epoch, period float64) float64 {
	return (t - epoch) / period
}

func fraction(cycles float64) float64 {
	frac := cycles - math.Floor(cycles)
	// Rounding can push a tiny negative fraction up to exactly 1.
	if frac >= 1 {
		return 0
	}
	return frac
}

func validate(epoch, period float64) error {
	if period == 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return zerr.With(domain.ErrInvalidParameter, "period", period)
	}
	if math.IsNaN(epoch) || math.IsInf(epoch, 0) {
		return zerr.With(domain.ErrInvalidParameter, "epoch", epoch)
	}
	return nil
}
