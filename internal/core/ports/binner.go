package ports

import "go.trai.ch/starview/internal/core/domain"

// Binner groups a series into mean observations and analyses the variance between groups.
//
//go:generate go run go.uber.org/mock/mockgen -source=binner.go -destination=mocks/mock_binner.go -package=mocks
type Binner interface {
	// Bin groups obs into consecutive bins of the given width in days.
	Bin(series string, obs []domain.Observation, size float64) (domain.BinningResult, error)
}
