package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.vvm.dev/vvm/internal/adapters/cache"
	"go.vvm.dev/vvm/internal/adapters/fs"
	"go.vvm.dev/vvm/internal/adapters/logger"
	"go.vvm.dev/vvm/internal/adapters/releases"
	"go.vvm.dev/vvm/internal/adapters/shell"
	"go.vvm.dev/vvm/internal/adapters/store"
	"go.vvm.dev/vvm/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			releases.NodeID,
			store.NodeID,
			cache.NodeID,
			shell.NodeID,
			fs.NodeID,
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
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	index, err := graft.Dep[ports.IndexClient](ctx)
	if err != nil {
		return nil, err
	}
	versionStore, err := graft.Dep[ports.VersionStore](ctx)
	if err != nil {
		return nil, err
	}
	outcomeCache, err := graft.Dep[ports.OutcomeCache](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}
	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(index, versionStore, outcomeCache, runner, digester, log), nil
}
