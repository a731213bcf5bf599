package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fs"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/app"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports/mocks"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/pipeline"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl      *gomock.Controller
	cache     *mocks.MockBundleCache
	watcher   *mocks.MockWatcher
	artifacts *mocks.MockArtifactStore
	logger    *mocks.MockLogger
	settings  *domain.Settings
	root      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	return &fixture{
		ctrl:      ctrl,
		cache:     mocks.NewMockBundleCache(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		artifacts: mocks.NewMockArtifactStore(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		settings:  &domain.Settings{Roots: []string{root}},
		root:      root,
	}
}

// newApp builds an App over a real pipeline rooted at the fixture's temp
// directory; everything else is mocked.
func (f *fixture) newApp(artifacts ports.ArtifactStore) *app.App {
	filesystem := fs.NewFileSystem()
	resolver := fs.NewResolver([]string{f.root}, filesystem)
	registry := transform.NewDefaultRegistry(filesystem, resolver)
	orchestrator := pipeline.NewOrchestrator(resolver, filesystem, nil, registry)
	return app.New(f.settings, f.cache, orchestrator, f.watcher, artifacts, f.logger)
}

func (f *fixture) writeAsset(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.root, name), []byte(content), domain.FilePerm))
}

func TestApp_Bundle_BuildsThroughCache(t *testing.T) {
	f := newFixture(t)
	f.writeAsset(t, "site.css", "body{}")

	a := f.newApp(nil)

	// The cache delegates to the build function, exercising the real
	// pipeline.
	f.cache.EXPECT().
		GetOrBuild(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, build ports.BuildFunc) (string, error) {
			out, _, err := build(ctx)
			return out, err
		})

	out, err := a.Bundle(context.Background(), []string{"site.css"}, domain.KindStyle, false)
	require.NoError(t, err)
	assert.Equal(t, "body{}", out)
}

func TestApp_Bundle_CachedResultNeedsNoBuild(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(nil)

	f.cache.EXPECT().
		GetOrBuild(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("cached output", nil)

	out, err := a.Bundle(context.Background(), []string{"site.css"}, domain.KindStyle, false)
	require.NoError(t, err)
	assert.Equal(t, "cached output", out)
}

func TestApp_Bundle_WrapsBuildErrors(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(nil)

	f.cache.EXPECT().
		GetOrBuild(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", zerr.New("resolution failed"))

	_, err := a.Bundle(context.Background(), []string{"missing.css"}, domain.KindStyle, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBundleBuildFailed)
}

func TestApp_Bundle_PersistsArtifact(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(f.artifacts)

	f.cache.EXPECT().
		GetOrBuild(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("body{}", nil)
	f.artifacts.EXPECT().
		Store(gomock.Any(), domain.KindStyle, "body{}").
		Return("/tmp/out/abc.css", nil)
	f.logger.EXPECT().Info(gomock.Any())

	out, err := a.Bundle(context.Background(), []string{"site.css"}, domain.KindStyle, false)
	require.NoError(t, err)
	assert.Equal(t, "body{}", out)
}

func TestApp_Bundle_ArtifactFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(f.artifacts)

	f.cache.EXPECT().
		GetOrBuild(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("body{}", nil)
	f.artifacts.EXPECT().
		Store(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", zerr.New("disk full"))
	f.logger.EXPECT().Warn(gomock.Any())

	out, err := a.Bundle(context.Background(), []string{"site.css"}, domain.KindStyle, false)
	require.NoError(t, err, "artifact persistence is best effort")
	assert.Equal(t, "body{}", out)
}

func TestApp_Watch_InvalidatesChangedPaths(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(nil)

	events := func(yield func(ports.WatchEvent) bool) {
		yield(ports.WatchEvent{Path: "/site/css/site.css", Operation: ports.OpWrite})
	}

	f.watcher.EXPECT().Start(gomock.Any()).Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](events))
	f.watcher.EXPECT().Stop().Return(nil)

	invalidated := make(chan []string, 1)
	f.cache.EXPECT().
		InvalidatePaths(gomock.Any()).
		Do(func(paths []string) { invalidated <- paths }).
		AnyTimes()

	require.NoError(t, a.Watch(context.Background()))

	select {
	case paths := <-invalidated:
		assert.Equal(t, []string{"/site/css/site.css"}, paths)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an invalidation for the changed path")
	}
}

func TestApp_Watch_CancellationIsCleanShutdown(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(nil)

	events := func(func(ports.WatchEvent) bool) {}

	f.watcher.EXPECT().Start(gomock.Any()).Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](events))
	f.watcher.EXPECT().Stop().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Watch(ctx))
}

func TestApp_Watch_StartFailure(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(nil)

	f.watcher.EXPECT().Start(gomock.Any()).Return(zerr.New("inotify limit"))

	err := a.Watch(context.Background())
	assert.Error(t, err)
}

func TestApp_Clean_FlushesCacheAndSweepsArtifacts(t *testing.T) {
	f := newFixture(t)
	f.settings.ArtifactRetention = 24 * time.Hour
	a := f.newApp(f.artifacts)

	f.cache.EXPECT().Clear()
	f.artifacts.EXPECT().Sweep(24 * time.Hour).Return(3, nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, a.Clean(context.Background()))
}

func TestApp_Clean_WithoutArtifactStore(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(nil)

	f.cache.EXPECT().Clear()

	require.NoError(t, a.Clean(context.Background()))
}

func TestApp_Clean_SweepFailure(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(f.artifacts)

	f.cache.EXPECT().Clear()
	f.artifacts.EXPECT().Sweep(gomock.Any()).Return(0, zerr.New("permission denied"))

	err := a.Clean(context.Background())
	assert.Error(t, err)
}
