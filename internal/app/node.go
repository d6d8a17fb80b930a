package app

import (
	"context"

	"dacsmoke/internal/adapters/alsa"     //nolint:depguard // Wired in app layer
	"dacsmoke/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"dacsmoke/internal/adapters/locator"  //nolint:depguard // Wired in app layer
	"dacsmoke/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"dacsmoke/internal/adapters/platform" //nolint:depguard // Wired in app layer
	"dacsmoke/internal/core/ports"
	"dacsmoke/internal/engine/player"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			alsa.NodeID,
			platform.NodeID,
			locator.NodeID,
			player.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	files, err := graft.Dep[ports.Files](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.Prober](ctx)
	if err != nil {
		return nil, err
	}

	plat, err := graft.Dep[ports.Platform](ctx)
	if err != nil {
		return nil, err
	}

	loc, err := graft.Dep[ports.Locator](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(files, prober, plat, loc, executor, log), nil
}
