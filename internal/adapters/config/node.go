package config

import (
	"context"
	"os"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/logger"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the graft ID of the parsed settings.
const NodeID graft.ID = "adapter.config.settings"

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewLoader(log).Load(cwd)
		},
	})
}
