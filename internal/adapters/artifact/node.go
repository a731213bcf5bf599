package artifact

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/config"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the graft ID of the artifact store adapter.
const NodeID graft.ID = "adapter.artifact.store"

func init() {
	graft.Register(graft.Node[ports.ArtifactStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if settings.ArtifactDir == "" {
				// Persistence disabled; callers treat a nil store as off.
				return nil, nil
			}
			return NewStore(settings.ArtifactDir)
		},
	})
}
