package fs

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/config"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// FileSystemNodeID is the graft ID of the file system adapter.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// ResolverNodeID is the graft ID of the resource resolver.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			return NewFileSystem(), nil
		},
	})

	graft.Register(graft.Node[ports.ResourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.ResourceResolver, error) {
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(settings.Roots, filesystem), nil
		},
	})
}
