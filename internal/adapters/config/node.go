package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
)

const (
	NodeID       graft.ID = "adapter.config_loader"
	ConfigNodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	// Resolved configuration, shared by every adapter that needs paths or
	// endpoints.
	graft.Register(graft.Node[*domain.Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load()
		},
	})
}
