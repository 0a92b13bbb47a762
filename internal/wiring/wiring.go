// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/starview/internal/adapters/binning"
	_ "go.trai.ch/starview/internal/adapters/config"
	_ "go.trai.ch/starview/internal/adapters/events"
	_ "go.trai.ch/starview/internal/adapters/fit"
	_ "go.trai.ch/starview/internal/adapters/logger"
	_ "go.trai.ch/starview/internal/adapters/metrics"
	_ "go.trai.ch/starview/internal/adapters/render"
	_ "go.trai.ch/starview/internal/adapters/telemetry"
	_ "go.trai.ch/starview/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/starview/internal/app"
	_ "go.trai.ch/starview/internal/engine/ledger"
	_ "go.trai.ch/starview/internal/engine/phase"
	_ "go.trai.ch/starview/internal/engine/view"
	_ "go.trai.ch/starview/internal/engine/viewcache"
)
