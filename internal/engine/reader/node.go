package reader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/locksmith/internal/adapters/git"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/locksmith/internal/adapters/gitmerge"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/locksmith/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/locksmith/internal/adapters/yamlcodec" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/locksmith/internal/engine/compat"
)

// NodeID is the unique identifier for the reader Graft node.
const NodeID graft.ID = "engine.reader"

func init() {
	graft.Register(graft.Node[*Reader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.SourceNodeID,
			yamlcodec.NodeID,
			gitmerge.NodeID,
			compat.NodeID,
			git.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reader, error) {
			source, err := graft.Dep[ports.LockfileSource](ctx)
			if err != nil {
				return nil, err
			}

			codec, err := graft.Dep[ports.DocumentCodec](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ConflictResolver](ctx)
			if err != nil {
				return nil, err
			}

			gate, err := graft.Dep[*compat.Gate](ctx)
			if err != nil {
				return nil, err
			}

			branches, err := graft.Dep[ports.BranchDetector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewReader(source, codec, resolver, gate, branches, log), nil
		},
	})
}
