package view

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starview/internal/core/ports"
)

// NodeID is the unique identifier for the view builder Graft node.
const NodeID graft.ID = "engine.view_builder"

func init() {
	graft.Register(graft.Node[ports.ViewBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ViewBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
