package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/locksmith/internal/core/ports"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
