package semver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/core/ports"
)

const NodeID graft.ID = "adapter.semver"

func init() {
	graft.Register(graft.Node[ports.VersionScheme]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.VersionScheme, error) {
			return NewScheme(), nil
		},
	})
}
