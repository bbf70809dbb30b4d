// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cachet/internal/adapters/cas"
	_ "go.trai.ch/cachet/internal/adapters/config"
	_ "go.trai.ch/cachet/internal/adapters/fs"
	_ "go.trai.ch/cachet/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/cachet/internal/app"
)
