package ports

import "go.trai.ch/starview/internal/core/domain"

// ModelFitter fits models to observations.
//
//go:generate go run go.uber.org/mock/mockgen -source=fitter.go -destination=mocks/mock_fitter.go -package=mocks
type ModelFitter interface {
	// Fit fits the model described by spec to the observations.
	Fit(obs []domain.Observation, spec domain.ModelSpec) (Model, error)
}
