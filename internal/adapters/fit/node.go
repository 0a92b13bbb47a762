package fit

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starview/internal/core/ports"
)

// NodeID is the unique identifier for the model fitter Graft node.
const NodeID graft.ID = "adapter.model_fitter"

func init() {
	graft.Register(graft.Node[ports.ModelFitter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModelFitter, error) {
			return NewPolynomialFitter(), nil
		},
	})
}
