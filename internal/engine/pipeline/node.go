package pipeline

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/parsnip/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/parsnip/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/parsnip/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/parsnip/internal/adapters/toolchain" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports"
)

const (
	// TrackerNodeID is the unique identifier for the progress tracker Graft node.
	TrackerNodeID graft.ID = "engine.tracker"
	// BuilderNodeID is the unique identifier for the pipeline builder Graft node.
	BuilderNodeID graft.ID = "engine.builder"
	// RunnerNodeID is the unique identifier for the pipeline runner Graft node.
	RunnerNodeID graft.ID = "engine.runner"
)

func init() {
	graft.Register(graft.Node[*domain.Tracker]{
		ID:        TrackerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Tracker, error) {
			return domain.NewTracker(), nil
		},
	})

	graft.Register(graft.Node[*Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{toolchain.NodeID, fs.WorkspaceNodeID, fs.MarkersNodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			tc, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			markers, err := graft.Dep[ports.MarkerStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(tc, workspace, markers), nil
		},
	})

	graft.Register(graft.Node[*Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, telemetry.NodeID, TrackerNodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			tele, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			tracker, err := graft.Dep[*domain.Tracker](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(executor, tracker, tele), nil
		},
	})
}
