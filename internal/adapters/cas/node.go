package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podfiler/internal/core/ports"
)

// NodeID is the unique identifier for the lock info store Graft node.
const NodeID graft.ID = "adapter.lock_info_store"

func init() {
	graft.Register(graft.Node[ports.LockInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockInfoStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
