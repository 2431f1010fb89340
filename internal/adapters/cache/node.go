package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.vvm.dev/vvm/internal/adapters/config"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
)

const NodeID graft.ID = "adapter.outcome_cache"

func init() {
	graft.Register(graft.Node[ports.OutcomeCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.OutcomeCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(cfg), nil
		},
	})
}
