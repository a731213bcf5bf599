// Package cache implements the fingerprinted, dependency-invalidated bundle
// cache.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.BundleCache = (*Cache)(nil)

// Cache implements ports.BundleCache.
//
// Freshness has two legs: the explicit revalidation in Get (the correctness
// backstop, works with no watcher at all) and the optional push-based watch
// armed on Put. Entries are immutable once stored; eviction swaps them out
// under the mutex so no reader ever observes a torn entry.
type Cache struct {
	fs       ports.FileSystem
	watcher  ports.Watcher
	logger   ports.Logger
	maxAge   time.Duration
	priority domain.CachePriority

	mu      sync.RWMutex
	entries map[string]*domain.CacheEntry
	byPath  map[string]map[string]struct{} // local dep path -> fingerprints

	// group guarantees at most one concurrent build per fingerprint. The
	// marker is released on every path, success, failure and cancellation
	// alike, because Do returns before waiters are answered.
	group singleflight.Group
}

// New creates a Cache. watcher may be nil: the polling check in Get is then
// the only invalidation path. maxAge of zero disables age eviction. priority
// is recorded on entries stored through GetOrBuild.
func New(filesystem ports.FileSystem, watcher ports.Watcher, logger ports.Logger, maxAge time.Duration, priority domain.CachePriority) *Cache {
	return &Cache{
		fs:       filesystem,
		watcher:  watcher,
		logger:   logger,
		maxAge:   maxAge,
		priority: priority,
		entries:  make(map[string]*domain.CacheEntry),
		byPath:   make(map[string]map[string]struct{}),
	}
}

// Get returns the entry for the fingerprint after revalidating it. A stale,
// expired or unverifiable entry is evicted and reported as a miss; misses
// are never errors.
func (c *Cache) Get(fingerprint string) (*domain.CacheEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[fingerprint]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.isFresh(entry) {
		return entry, true
	}

	c.evict(fingerprint, entry)
	return nil, false
}

// isFresh re-validates the entry: age first, then every local dependency's
// current modification token against the recorded one. Remote dependencies
// carry no change signal and are covered by the age check alone. A stat
// failure counts as stale: an unverifiable entry must not be served.
func (c *Cache) isFresh(entry *domain.CacheEntry) bool {
	if entry.Expired(c.maxAge, time.Now()) {
		return false
	}

	for _, dep := range entry.Dependencies.All() {
		if dep.Remote {
			continue
		}
		token, err := c.fs.Stat(dep.Identity)
		if err != nil || token != dep.Token {
			return false
		}
	}

	return true
}

// GetOrBuild returns cached output or builds it, running build at most once
// per fingerprint regardless of how many callers arrive concurrently.
func (c *Cache) GetOrBuild(ctx context.Context, fingerprint string, build ports.BuildFunc) (string, error) {
	if entry, ok := c.Get(fingerprint); ok {
		return entry.Output, nil
	}

	output, err, _ := c.group.Do(fingerprint, func() (any, error) {
		// A waiter that queued behind a finished build finds the fresh
		// entry here instead of rebuilding.
		if entry, ok := c.Get(fingerprint); ok {
			return entry.Output, nil
		}

		output, deps, err := build(ctx)
		if err != nil {
			// A failed build must not poison the cache: nothing stored.
			return "", err
		}

		c.put(fingerprint, output, deps, c.priority)
		return output, nil
	})
	if err != nil {
		return "", err
	}

	return output.(string), nil
}

// Put stores an entry, replacing any existing entry for the fingerprint
// atomically, and arms watches on its local dependencies.
func (c *Cache) Put(fingerprint, output string, deps *domain.DependencySet, priority domain.CachePriority) {
	c.put(fingerprint, output, deps, priority)
}

func (c *Cache) put(fingerprint, output string, deps *domain.DependencySet, priority domain.CachePriority) {
	if deps == nil {
		deps = domain.NewDependencySet()
	}

	entry := &domain.CacheEntry{
		Fingerprint:  fingerprint,
		Output:       output,
		Dependencies: deps,
		CreatedAt:    time.Now(),
		Priority:     priority,
	}

	c.mu.Lock()
	if old, ok := c.entries[fingerprint]; ok {
		c.unindex(fingerprint, old)
	}
	c.entries[fingerprint] = entry
	for _, path := range deps.LocalPaths() {
		set, ok := c.byPath[path]
		if !ok {
			set = make(map[string]struct{})
			c.byPath[path] = set
		}
		set[fingerprint] = struct{}{}
	}
	c.mu.Unlock()

	c.armWatches(deps.LocalPaths())
}

// armWatches registers every local dependency with the watcher so an
// external change notification evicts the entry without waiting for the
// next Get.
func (c *Cache) armWatches(paths []string) {
	if c.watcher == nil {
		return
	}
	for _, path := range paths {
		if err := c.watcher.Watch(path); err != nil {
			c.logger.Warn(fmt.Sprintf("failed to watch %s: %v", path, err))
		}
	}
}

// Invalidate evicts the entry for the fingerprint.
func (c *Cache) Invalidate(fingerprint string) {
	c.mu.Lock()
	if entry, ok := c.entries[fingerprint]; ok {
		c.unindex(fingerprint, entry)
		delete(c.entries, fingerprint)
	}
	c.mu.Unlock()
}

// InvalidatePaths evicts every entry whose dependency set contains one of
// the changed paths. Applied atomically with respect to concurrent Gets.
func (c *Cache) InvalidatePaths(paths []string) {
	c.mu.Lock()
	evicted := 0
	for _, path := range paths {
		for fingerprint := range c.byPath[path] {
			if entry, ok := c.entries[fingerprint]; ok {
				c.unindex(fingerprint, entry)
				delete(c.entries, fingerprint)
				evicted++
			}
		}
	}
	c.mu.Unlock()

	if evicted > 0 {
		c.logger.Info(fmt.Sprintf("evicted %d cache entries after file changes", evicted))
	}
}

// Clear evicts all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*domain.CacheEntry)
	c.byPath = make(map[string]map[string]struct{})
	c.mu.Unlock()
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evict removes the fingerprint only if it still maps to the same entry,
// so a concurrent Put is never clobbered.
func (c *Cache) evict(fingerprint string, stale *domain.CacheEntry) {
	c.mu.Lock()
	if current, ok := c.entries[fingerprint]; ok && current == stale {
		c.unindex(fingerprint, current)
		delete(c.entries, fingerprint)
	}
	c.mu.Unlock()
}

// unindex drops the entry's reverse path index. Caller holds the lock.
func (c *Cache) unindex(fingerprint string, entry *domain.CacheEntry) {
	for _, path := range entry.Dependencies.LocalPaths() {
		if set, ok := c.byPath[path]; ok {
			delete(set, fingerprint)
			if len(set) == 0 {
				delete(c.byPath, path)
			}
		}
	}
}
