package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.vvm.dev/vvm/internal/core/ports"
)

const NodeID graft.ID = "adapter.fs.digester"

func init() {
	graft.Register(graft.Node[ports.Digester]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Digester, error) {
			return NewDigester(), nil
		},
	})
}
