package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	fsadapter "go.trai.ch/cachet/internal/adapters/fs"
	"go.trai.ch/cachet/internal/adapters/logger"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fsadapter.AferoNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fs, log), nil
		},
	})
}
