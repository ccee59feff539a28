package revision

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/parsnip/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/parsnip/internal/core/ports"
)

// NodeID is the unique identifier for the revision resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LockfileNodeID, fs.MarkersNodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			lockfile, err := graft.Dep[ports.LockfileSource](ctx)
			if err != nil {
				return nil, err
			}
			markers, err := graft.Dep[ports.MarkerStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(lockfile, markers), nil
		},
	})
}
