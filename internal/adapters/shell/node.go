package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.vvm.dev/vvm/internal/core/ports"
)

const NodeID graft.ID = "adapter.shell.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Runner, error) {
			return NewRunner(), nil
		},
	})
}
