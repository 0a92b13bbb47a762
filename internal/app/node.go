package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starview/internal/adapters/binning"   //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/events"    //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/fit"       //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/starview/internal/engine/ledger"
	"go.trai.ch/starview/internal/engine/viewcache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the wired application and the resources main has to release.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry *telemetry.Provider
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fit.NodeID,
			binning.NodeID,
			viewcache.NodeID,
			ledger.NodeID,
			events.NodeID,
			render.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log, Telemetry: provider}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SessionLoader](ctx)
	if err != nil {
		return nil, err
	}

	fitter, err := graft.Dep[ports.ModelFitter](ctx)
	if err != nil {
		return nil, err
	}

	binner, err := graft.Dep[ports.Binner](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*viewcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	stats, err := graft.Dep[*ledger.Ledger](ctx)
	if err != nil {
		return nil, err
	}

	bus, err := graft.Dep[*events.Bus](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fitter, binner, cache, stats, bus, renderer, log, provider).
		WithWatcher(w).
		WithMetricsHandler(recorder.Handler()), nil
}
