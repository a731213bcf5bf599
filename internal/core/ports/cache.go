package ports

import (
	"context"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
)

// BuildFunc produces the output and dependency set for one bundle build.
type BuildFunc func(ctx context.Context) (string, *domain.DependencySet, error)

// BundleCache stores pipeline output keyed by bundle fingerprint.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type BundleCache interface {
	// Get returns the entry for the fingerprint after revalidating it.
	// A stale or expired entry is evicted and reported as a miss. Misses
	// are never errors.
	Get(fingerprint string) (*domain.CacheEntry, bool)

	// GetOrBuild returns the cached output or runs build exactly once per
	// fingerprint, no matter how many callers arrive concurrently. A failed
	// build stores nothing and is returned to every waiting caller.
	GetOrBuild(ctx context.Context, fingerprint string, build BuildFunc) (string, error)

	// Put stores an entry, replacing any existing entry for the fingerprint
	// atomically, and arms watches on its local dependencies.
	Put(fingerprint, output string, deps *domain.DependencySet, priority domain.CachePriority)

	// Invalidate evicts the entry for the fingerprint.
	Invalidate(fingerprint string)

	// InvalidatePaths evicts every entry whose dependency set contains one
	// of the changed paths.
	InvalidatePaths(paths []string)

	// Clear evicts all entries.
	Clear()
}
