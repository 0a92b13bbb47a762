package ledger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starview/internal/adapters/events" //nolint:depguard // Listener is wired at construction
)

// NodeID is the unique identifier for the stats ledger Graft node.
const NodeID graft.ID = "engine.stats_ledger"

func init() {
	graft.Register(graft.Node[*Ledger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{events.NodeID},
		Run: func(ctx context.Context) (*Ledger, error) {
			bus, err := graft.Dep[*events.Bus](ctx)
			if err != nil {
				return nil, err
			}

			l := New()
			bus.NewDataset.AddListener(l.NewDatasetListener())
			bus.Binning.AddListener(l.BinningListener())
			return l, nil
		},
	})
}
