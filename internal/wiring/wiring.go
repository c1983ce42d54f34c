// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/glimpse/internal/adapters/config"
	_ "go.trai.ch/glimpse/internal/adapters/fs"
	_ "go.trai.ch/glimpse/internal/adapters/logger"
	_ "go.trai.ch/glimpse/internal/adapters/pdf"
	_ "go.trai.ch/glimpse/internal/adapters/raster"
	_ "go.trai.ch/glimpse/internal/adapters/rendercache"
	_ "go.trai.ch/glimpse/internal/adapters/telemetry"
	_ "go.trai.ch/glimpse/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/glimpse/internal/app"
	_ "go.trai.ch/glimpse/internal/engine/dispatcher"
)
