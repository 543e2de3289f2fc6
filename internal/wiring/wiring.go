// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stale/internal/adapters/checksum"
	_ "go.trai.ch/stale/internal/adapters/config"
	_ "go.trai.ch/stale/internal/adapters/logger"
	_ "go.trai.ch/stale/internal/adapters/state"
	_ "go.trai.ch/stale/internal/adapters/telemetry/progrock"
	// Register the app node.
	_ "go.trai.ch/stale/internal/app"
)
