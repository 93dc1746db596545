package lockyaml

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podfiler/internal/core/ports"
)

// NodeID is the unique identifier for the YAML encoder Graft node.
const NodeID graft.ID = "adapter.lockyaml"

func init() {
	graft.Register(graft.Node[ports.LockEncoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
