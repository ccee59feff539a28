package fs

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"

	"go.trai.ch/parsnip/internal/adapters/config"
	"go.trai.ch/parsnip/internal/core/ports"
)

const (
	// MarkersNodeID is the unique identifier for the marker store Graft node.
	MarkersNodeID graft.ID = "adapter.markers"
	// LockfileNodeID is the unique identifier for the lockfile reader Graft node.
	LockfileNodeID graft.ID = "adapter.lockfile"
	// WorkspaceNodeID is the unique identifier for the workspace Graft node.
	WorkspaceNodeID graft.ID = "adapter.workspace"
)

func init() {
	graft.Register(graft.Node[ports.MarkerStore]{
		ID:        MarkersNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MarkerStore, error) {
			root, err := DataDir()
			if err != nil {
				return nil, err
			}
			return NewMarkerStore(filepath.Join(root, "info")), nil
		},
	})

	graft.Register(graft.Node[ports.LockfileSource]{
		ID:        LockfileNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileSource, error) {
			configDir := filepath.Dir(ConfigPath(config.DefaultFilename))
			return NewLockfileReader(filepath.Join(configDir, "lockfile.json")), nil
		},
	})

	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Workspace, error) {
			root, err := DataDir()
			if err != nil {
				return nil, err
			}
			configDir := filepath.Dir(ConfigPath(config.DefaultFilename))
			return NewWorkspace(root, filepath.Join(configDir, "queries")), nil
		},
	})
}
