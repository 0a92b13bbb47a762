package viewcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starview/internal/adapters/events"  //nolint:depguard // Listeners are wired at construction
	"go.trai.ch/starview/internal/adapters/metrics" //nolint:depguard // Recorder backs ports.ViewMetrics
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/starview/internal/engine/phase"
	"go.trai.ch/starview/internal/engine/view"
)

// NodeID is the unique identifier for the derived view cache Graft node.
const NodeID graft.ID = "engine.view_cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			phase.NodeID,
			view.NodeID,
			metrics.NodeID,
			events.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			assigner, err := graft.Dep[ports.PhaseAssigner](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[ports.ViewBuilder](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[*metrics.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			bus, err := graft.Dep[*events.Bus](ctx)
			if err != nil {
				return nil, err
			}

			c := New(assigner, builder, recorder)
			bus.NewDataset.AddListener(c.NewDatasetListener())
			bus.PhaseChange.AddListener(c.PhaseChangeListener())
			return c, nil
		},
	})
}
