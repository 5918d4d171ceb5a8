package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/core/ports"
)

const (
	SourceNodeID graft.ID = "adapter.fs.source"
	WalkerNodeID graft.ID = "adapter.fs.walker"
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.LockfileSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockfileSource, error) {
			return NewSource(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectFinder]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProjectFinder, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
