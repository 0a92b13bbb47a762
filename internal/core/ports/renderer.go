package ports

import "go.trai.ch/starview/internal/core/domain"

// Renderer presents datasets, derived views and statistics to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Dataset writes a heading for the loaded dataset.
	Dataset(ds *domain.Dataset) error
	// View writes one derived view.
	View(v *domain.DerivedView, opts domain.RenderOptions) error
	// Ledger writes the statistics entries. An empty ledger writes nothing.
	Ledger(entries []domain.LedgerEntry) error
}
