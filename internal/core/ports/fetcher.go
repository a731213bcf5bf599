package ports

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
)

// RemoteFetcher downloads allow-listed external resources under a
// SecurityPolicy.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type RemoteFetcher interface {
	// Fetch resolves the identifier through the policy whitelist and
	// downloads it. The returned resource carries the fetched content, the
	// resolved origin URL and a fetch-time modification token.
	Fetch(ctx context.Context, identifier string, policy domain.SecurityPolicy) (domain.ResolvedResource, error)
}
