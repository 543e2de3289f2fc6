package checksum

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the checksummer Graft node.
const NodeID graft.ID = "adapter.checksummer"

func init() {
	graft.Register(graft.Node[ports.Checksummer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Checksummer, error) {
			return New(), nil
		},
	})
}
