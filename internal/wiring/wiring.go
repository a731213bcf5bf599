// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/artifact"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/config"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fetch"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fs"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/logger"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/app"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/cache"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/pipeline"
	_ "github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/transform"
)
