package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/locksmith/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/locksmith/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/locksmith/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/locksmith/internal/adapters/yamlcodec" //nolint:depguard // Wired in app layer
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/locksmith/internal/engine/reader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			reader.NodeID,
			yamlcodec.NodeID,
			fs.HasherNodeID,
			config.NodeID,
			fs.WalkerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	r, err := graft.Dep[*reader.Reader](ctx)
	if err != nil {
		return nil, err
	}

	codec, err := graft.Dep[ports.DocumentCodec](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.ProjectFinder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(r, codec, hasher, settings, finder, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
