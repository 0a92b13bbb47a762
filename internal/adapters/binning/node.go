package binning

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starview/internal/core/ports"
)

// NodeID is the unique identifier for the binner Graft node.
const NodeID graft.ID = "adapter.binner"

func init() {
	graft.Register(graft.Node[ports.Binner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Binner, error) {
			return NewTimeBinner(), nil
		},
	})
}
