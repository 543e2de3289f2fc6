package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/adapters/checksum"           //nolint:depguard // Wired in app wiring
	"go.trai.ch/stale/internal/adapters/config"             //nolint:depguard // Wired in app wiring
	"go.trai.ch/stale/internal/adapters/logger"             //nolint:depguard // Wired in app wiring
	"go.trai.ch/stale/internal/adapters/state"              //nolint:depguard // Wired in app wiring
	"go.trai.ch/stale/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app wiring
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the app Graft node.
const NodeID graft.ID = "app"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			state.NodeID,
			checksum.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.SiteLoader](ctx)
			if err != nil {
				return nil, err
			}
			opener, err := graft.Dep[ports.StateOpener](ctx)
			if err != nil {
				return nil, err
			}
			checksummer, err := graft.Dep[ports.Checksummer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, opener, checksummer, log, telemetry), nil
		},
	})
}
