package podlock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podfiler/internal/core/ports"
)

// NodeID is the unique identifier for the lock parser Graft node.
const NodeID graft.ID = "engine.podlock"

func init() {
	graft.Register(graft.Node[ports.LockParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockParser, error) {
			matcher, err := NewMatcher(defaultPatternCacheSize)
			if err != nil {
				return nil, err
			}
			return NewEngine(matcher), nil
		},
	})
}
