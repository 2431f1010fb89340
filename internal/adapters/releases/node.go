package releases

import (
	"context"

	"github.com/grindlemire/graft"
	"go.vvm.dev/vvm/internal/adapters/config"
	"go.vvm.dev/vvm/internal/adapters/fs"
	"go.vvm.dev/vvm/internal/adapters/logger"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
)

const NodeID graft.ID = "adapter.index_client"

func init() {
	graft.Register(graft.Node[ports.IndexClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.IndexClient, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
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
			return NewClient(cfg, digester, log)
		},
	})
}
