package pipeline

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fetch"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fs"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/transform"
	"github.com/grindlemire/graft"
)

// NodeID is the graft ID of the pipeline orchestrator.
const NodeID graft.ID = "engine.pipeline.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID, fs.FileSystemNodeID, fetch.NodeID, transform.NodeID},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			resolver, err := graft.Dep[ports.ResourceResolver](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.RemoteFetcher](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[*transform.Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewOrchestrator(resolver, filesystem, fetcher, registry), nil
		},
	})
}
