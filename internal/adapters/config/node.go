package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the site loader Graft node.
const NodeID graft.ID = "adapter.site_loader"

func init() {
	graft.Register(graft.Node[ports.SiteLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SiteLoader, error) {
			return NewFileLoader(), nil
		},
	})
}
