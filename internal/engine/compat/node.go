package compat

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/adapters/semver" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/locksmith/internal/core/ports"
)

// NodeID is the unique identifier for the compatibility gate Graft node.
const NodeID graft.ID = "engine.compat"

func init() {
	graft.Register(graft.Node[*Gate]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{semver.NodeID},
		Run: func(ctx context.Context) (*Gate, error) {
			scheme, err := graft.Dep[ports.VersionScheme](ctx)
			if err != nil {
				return nil, err
			}
			return NewGate(scheme), nil
		},
	})
}
