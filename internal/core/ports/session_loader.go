package ports

import "go.trai.ch/starview/internal/core/domain"

// SessionLoader defines the interface for loading a session file.
//
//go:generate go run go.uber.org/mock/mockgen -source=session_loader.go -destination=mocks/mock_session_loader.go -package=mocks
type SessionLoader interface {
	// Load reads and validates the session file at path.
	Load(path string) (*domain.Session, error)
}
