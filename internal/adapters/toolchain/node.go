package toolchain

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/parsnip/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Toolchain, error) {
			return New(), nil
		},
	})
}
