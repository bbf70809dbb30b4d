package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cachet/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/cachet/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cachet/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/cachet/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what main needs after the graph is resolved.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.FilesystemNodeID,
			fs.HasherNodeID,
			cas.NodeID,
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

	filesystem, err := graft.Dep[ports.Filesystem](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.IdentityHasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.EntryStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, filesystem, hasher, store, log), nil
}
