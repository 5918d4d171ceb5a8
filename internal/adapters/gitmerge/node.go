package gitmerge

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/core/ports"
)

const NodeID graft.ID = "adapter.gitmerge"

func init() {
	graft.Register(graft.Node[ports.ConflictResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConflictResolver, error) {
			return NewResolver(), nil
		},
	})
}
