package phase

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starview/internal/core/ports"
)

// NodeID is the unique identifier for the phase assigner Graft node.
const NodeID graft.ID = "engine.phase_assigner"

func init() {
	graft.Register(graft.Node[ports.PhaseAssigner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PhaseAssigner, error) {
			return NewAssigner(), nil
		},
	})
}
