package cache

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/config"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fs"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/logger"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/watcher"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the graft ID of the bundle cache.
const NodeID graft.ID = "engine.cache"

func init() {
	graft.Register(graft.Node[ports.BundleCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, watcher.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.BundleCache, error) {
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(filesystem, w, log, settings.CacheMaxAge, settings.CachePriority), nil
		},
	})
}
