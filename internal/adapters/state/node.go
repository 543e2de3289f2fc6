package state

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the state opener Graft node.
const NodeID graft.ID = "adapter.state_opener"

var _ ports.StateOpener = (*Opener)(nil)

// Opener opens the state store for a site directory.
type Opener struct{}

// Open loads the state file under dir, creating an empty store when none
// exists yet.
func (o *Opener) Open(dir string) (ports.StateStore, error) {
	return NewStore(filepath.Join(dir, FileName))
}

func init() {
	graft.Register(graft.Node[ports.StateOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateOpener, error) {
			return &Opener{}, nil
		},
	})
}
