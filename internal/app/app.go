// Package app implements the application layer for cruncher.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/watcher"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// debounceWindow coalesces bursts of file events before invalidating.
const debounceWindow = 100 * time.Millisecond

// App wires the cache, the pipeline and the accessory stores behind the one
// programmatic entry point: the bundle request.
type App struct {
	settings  *domain.Settings
	cache     ports.BundleCache
	pipeline  *pipeline.Orchestrator
	watcher   ports.Watcher
	artifacts ports.ArtifactStore
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	cache ports.BundleCache,
	orchestrator *pipeline.Orchestrator,
	w ports.Watcher,
	artifacts ports.ArtifactStore,
	logger ports.Logger,
) *App {
	return &App{
		settings:  settings,
		cache:     cache,
		pipeline:  orchestrator,
		watcher:   w,
		artifacts: artifacts,
		logger:    logger,
	}
}

// Bundle builds (or serves from cache) the combined output for the ordered
// identifiers. Served-from-cache and freshly-built results are
// indistinguishable to the caller.
func (a *App) Bundle(ctx context.Context, identifiers []string, kind domain.TargetKind, minify bool) (string, error) {
	spec := domain.BundleSpec{Identifiers: identifiers, Kind: kind, Minify: minify}
	fingerprint := spec.Fingerprint()

	output, err := a.cache.GetOrBuild(ctx, fingerprint, func(ctx context.Context) (string, *domain.DependencySet, error) {
		return a.pipeline.Build(ctx, spec, a.settings.Security)
	})
	if err != nil {
		return "", errors.Join(domain.ErrBundleBuildFailed, err)
	}

	if a.artifacts != nil {
		if path, err := a.artifacts.Store(fingerprint, kind, output); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to persist artifact: %v", err))
		} else {
			a.logger.Info("artifact written to " + path)
		}
	}

	return output, nil
}

// Watch runs the push-based invalidation loop until the context is
// cancelled. Change notifications are debounced and then evict every cache
// entry depending on a changed path.
func (a *App) Watch(ctx context.Context) error {
	if err := a.watcher.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer a.watcher.Stop() //nolint:errcheck // Best effort close on shutdown

	debouncer := watcher.NewDebouncer(debounceWindow, a.cache.InvalidatePaths)
	defer debouncer.Flush()

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	// Cancellation is the normal way to stop watching, not a failure.
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Clean flushes the cache and sweeps expired artifacts.
func (a *App) Clean(_ context.Context) error {
	a.cache.Clear()

	if a.artifacts == nil {
		return nil
	}

	removed, err := a.artifacts.Sweep(a.settings.ArtifactRetention)
	if err != nil {
		return zerr.Wrap(err, "artifact sweep failed")
	}
	a.logger.Info(fmt.Sprintf("removed %d expired artifacts", removed))
	return nil
}
