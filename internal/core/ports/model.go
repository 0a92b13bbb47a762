// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/starview/internal/core/domain"

// Model is a fitted mathematical model of a star's observations.
// A model must not change while views built from it are cached.
//
//go:generate go run go.uber.org/mock/mockgen -source=model.go -destination=mocks/mock_model.go -package=mocks
type Model interface {
	// Description is a stable, human-readable name used to key cached views.
	Description() string
	// Fit returns the model values at the observation times.
	Fit() []domain.Observation
	// Residuals returns observed minus fitted values.
	Residuals() []domain.Observation
	// Summary returns display text describing the fitted model.
	Summary() string
}
