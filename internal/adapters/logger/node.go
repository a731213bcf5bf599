package logger

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the graft ID of the logger adapter.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
