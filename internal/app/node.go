package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glimpse/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/glimpse/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/glimpse/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/glimpse/internal/adapters/rendercache" //nolint:depguard // Wired in app layer
	"go.trai.ch/glimpse/internal/adapters/watcher"     //nolint:depguard // Wired in app layer
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/glimpse/internal/engine/dispatcher"
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
			config.NodeID,
			fs.ResolverNodeID,
			dispatcher.NodeID,
			rendercache.NodeID,
			watcher.NodeID,
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
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.ReferenceResolver](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.PreviewRenderer](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*rendercache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, renderer, cache, fileWatcher, log), nil
}
