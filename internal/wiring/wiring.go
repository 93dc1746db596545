// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/podfiler/internal/adapters/cas"
	_ "go.trai.ch/podfiler/internal/adapters/config"
	_ "go.trai.ch/podfiler/internal/adapters/fs"
	_ "go.trai.ch/podfiler/internal/adapters/lockyaml"
	_ "go.trai.ch/podfiler/internal/adapters/logger"
	_ "go.trai.ch/podfiler/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/podfiler/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/podfiler/internal/app"
	_ "go.trai.ch/podfiler/internal/engine/podlock"
)
