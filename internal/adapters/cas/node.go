package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	fsadapter "go.trai.ch/cachet/internal/adapters/fs"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the entry store Graft node.
const NodeID graft.ID = "adapter.entry_store"

func init() {
	graft.Register(graft.Node[ports.EntryStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fsadapter.AferoNodeID},
		Run: func(ctx context.Context) (ports.EntryStore, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(fs), nil
		},
	})
}
