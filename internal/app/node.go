package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/parsnip/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/parsnip/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/parsnip/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/parsnip/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/parsnip/internal/adapters/term"      //nolint:depguard // Wired in app layer
	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports"
	"go.trai.ch/parsnip/internal/engine/pipeline"
	"go.trai.ch/parsnip/internal/engine/revision"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			revision.NodeID,
			pipeline.BuilderNodeID,
			pipeline.RunnerNodeID,
			pipeline.TrackerNodeID,
			fs.MarkersNodeID,
			fs.WorkspaceNodeID,
			term.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tele, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Telemetry: tele}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.RegistryLoader](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[*revision.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[*pipeline.Builder](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[*pipeline.Runner](ctx)
	if err != nil {
		return nil, err
	}
	tracker, err := graft.Dep[*domain.Tracker](ctx)
	if err != nil {
		return nil, err
	}
	markers, err := graft.Dep[ports.MarkerStore](ctx)
	if err != nil {
		return nil, err
	}
	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}
	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, resolver, builder, runner, markers, workspace, prompter, tracker, log), nil
}
