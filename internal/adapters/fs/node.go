package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/cachet/internal/core/ports"
)

const (
	AferoNodeID      graft.ID = "adapter.fs.afero"
	FilesystemNodeID graft.ID = "adapter.fs.filesystem"
	HasherNodeID     graft.ID = "adapter.fs.hasher"
)

func init() {
	// Shared OS file system, also consumed by the store and the config loader.
	graft.Register(graft.Node[afero.Fs]{
		ID:        AferoNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.Filesystem]{
		ID:        FilesystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AferoNodeID},
		Run: func(ctx context.Context) (ports.Filesystem, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewFilesystem(fs), nil
		},
	})

	graft.Register(graft.Node[ports.IdentityHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IdentityHasher, error) {
			return NewHasher(), nil
		},
	})
}
