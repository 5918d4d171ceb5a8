package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/core/ports"
)

const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.BranchDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BranchDetector, error) {
			return NewDetector(), nil
		},
	})
}
