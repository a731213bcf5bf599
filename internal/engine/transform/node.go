package transform

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fs"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the graft ID of the default transform registry.
const NodeID graft.ID = "engine.transform.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, fs.ResolverNodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ResourceResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewDefaultRegistry(filesystem, resolver), nil
		},
	})
}
