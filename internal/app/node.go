package app

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/artifact" //nolint:depguard // Wired in app layer
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	watcheradapter "github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/cache"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/pipeline"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application pieces handed to main.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *domain.Settings
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			pipeline.NodeID,
			watcheradapter.NodeID,
			artifact.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			bundleCache, err := graft.Dep[ports.BundleCache](ctx)
			if err != nil {
				return nil, err
			}
			orchestrator, err := graft.Dep[*pipeline.Orchestrator](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			artifacts, err := graft.Dep[ports.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings, bundleCache, orchestrator, w, artifacts, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
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
			return &Components{App: a, Logger: log, Settings: settings}, nil
		},
	})
}
