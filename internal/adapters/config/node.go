package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"go.trai.ch/parsnip/internal/core/ports"
)

// NodeID is the unique identifier for the registry loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.RegistryLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RegistryLoader, error) {
			path := DefaultFilename
			if env := os.Getenv("PARSNIP_CONFIG"); env != "" {
				path = env
			}
			return NewLoader(path), nil
		},
	})
}
