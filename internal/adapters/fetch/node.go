package fetch

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the graft ID of the remote fetcher adapter.
const NodeID graft.ID = "adapter.fetch.fetcher"

func init() {
	graft.Register(graft.Node[ports.RemoteFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RemoteFetcher, error) {
			return NewFetcher(), nil
		},
	})
}
