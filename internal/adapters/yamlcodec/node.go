package yamlcodec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/core/ports"
)

const NodeID graft.ID = "adapter.yamlcodec"

func init() {
	graft.Register(graft.Node[ports.DocumentCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DocumentCodec, error) {
			return NewCodec(), nil
		},
	})
}
