package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/adapters/fs"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports/mocks"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/pipeline"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeAsset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

// newOrchestrator builds an orchestrator over a real file system rooted at
// root, with the default transform chains and the given fetcher.
func newOrchestrator(root string, fetcher ports.RemoteFetcher) *pipeline.Orchestrator {
	filesystem := fs.NewFileSystem()
	resolver := fs.NewResolver([]string{root}, filesystem)
	registry := transform.NewDefaultRegistry(filesystem, resolver)
	return pipeline.NewOrchestrator(resolver, filesystem, fetcher, registry)
}

func TestOrchestrator_Build_PreservesOrder(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "reset.css", "body{margin:0}")
	writeAsset(t, root, "site.css", "h1{color:red}")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{
		Identifiers: []string{"reset.css", "site.css"},
		Kind:        domain.KindStyle,
	}
	out, deps, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, "body{margin:0}\nh1{color:red}", out)
	assert.Equal(t, 2, deps.Len())
	assert.True(t, deps.Contains(filepath.Join(root, "reset.css")))
}

func TestOrchestrator_Build_ScriptSeparator(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "a.js", "var a=1")
	writeAsset(t, root, "b.js", "var b=2")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{Identifiers: []string{"a.js", "b.js"}, Kind: domain.KindScript}
	out, _, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, "var a=1;\nvar b=2", out)
}

func TestOrchestrator_Build_MinifyNeverGrowsOutput(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "site.css", "body {\n    margin: 0;\n}\n/* comment */\n")

	o := newOrchestrator(root, nil)

	plain := domain.BundleSpec{Identifiers: []string{"site.css"}, Kind: domain.KindStyle}
	minified := plain
	minified.Minify = true

	plainOut, _, err := o.Build(context.Background(), plain, domain.SecurityPolicy{})
	require.NoError(t, err)
	minOut, _, err := o.Build(context.Background(), minified, domain.SecurityPolicy{})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(minOut), len(plainOut))
	assert.Equal(t, "body{margin:0}", minOut)
}

func TestOrchestrator_Build_RewritesRelativeReferences(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, filepath.Join("css", "style.css"), "body{background:url(img/logo.png)}")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{Identifiers: []string{"css/style.css"}, Kind: domain.KindStyle}
	out, _, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, "body{background:url(/css/img/logo.png)}", out)
}

func TestOrchestrator_Build_TracksImportedDependencies(t *testing.T) {
	root := t.TempDir()
	imported := writeAsset(t, root, "reset.css", "body{margin:0}")
	writeAsset(t, root, "site.css", `@import "reset.css";`+"\nh1{}")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{Identifiers: []string{"site.css"}, Kind: domain.KindStyle}
	out, deps, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, "body{margin:0}\nh1{}", out)
	assert.True(t, deps.Contains(imported), "imported file must be tracked for invalidation")
}

func TestOrchestrator_Build_ExpandsGlobIdentifiers(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "a.css", "a{}")
	writeAsset(t, root, "b.css", "b{}")
	writeAsset(t, root, "skip.js", "var s=1")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{Identifiers: []string{"*.css"}, Kind: domain.KindStyle}
	out, deps, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, "a{}\nb{}", out)
	assert.Equal(t, 2, deps.Len())
}

func TestOrchestrator_Build_EmptyBundle(t *testing.T) {
	o := newOrchestrator(t.TempDir(), nil)

	_, _, err := o.Build(context.Background(), domain.BundleSpec{Kind: domain.KindStyle}, domain.SecurityPolicy{})
	assert.ErrorIs(t, err, domain.ErrEmptyBundle)
}

func TestOrchestrator_Build_UnknownKind(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "site.css", "body{}")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{Identifiers: []string{"site.css"}, Kind: "font"}
	_, _, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	assert.ErrorIs(t, err, domain.ErrUnknownTargetKind)
}

func TestOrchestrator_Build_RejectsRawURLs(t *testing.T) {
	o := newOrchestrator(t.TempDir(), nil)

	spec := domain.BundleSpec{
		Identifiers: []string{"https://cdn.example.com/lib.js"},
		Kind:        domain.KindScript,
	}
	policy := domain.SecurityPolicy{AllowRemote: true}
	_, _, err := o.Build(context.Background(), spec, policy)
	assert.ErrorIs(t, err, domain.ErrRemoteNotWhitelisted)
}

func TestOrchestrator_Build_FetchesWhitelistedTokens(t *testing.T) {
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	writeAsset(t, root, "app.js", "var app=1")

	policy := domain.SecurityPolicy{
		AllowRemote: true,
		Whitelist:   map[string]string{"jquery": "https://cdn.example.com/jquery.js"},
	}

	fetcher := mocks.NewMockRemoteFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "jquery", gomock.Any()).
		Return(domain.ResolvedResource{
			Identifier: "jquery",
			Origin:     "https://cdn.example.com/jquery.js",
			Content:    "var jq=1",
			Token:      time.Now().UnixNano(),
		}, nil)

	o := newOrchestrator(root, fetcher)

	spec := domain.BundleSpec{Identifiers: []string{"jquery", "app.js"}, Kind: domain.KindScript}
	out, deps, err := o.Build(context.Background(), spec, policy)
	require.NoError(t, err)

	assert.Equal(t, "var jq=1;\nvar app=1", out)
	assert.True(t, deps.Contains("https://cdn.example.com/jquery.js"))
	assert.Equal(t, []string{filepath.Join(root, "app.js")}, deps.LocalPaths())
}

func TestOrchestrator_Build_RewritesRemoteContentAgainstOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)

	policy := domain.SecurityPolicy{
		AllowRemote: true,
		Whitelist:   map[string]string{"theme": "https://cdn.example.com/assets/theme.css"},
	}

	fetcher := mocks.NewMockRemoteFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "theme", gomock.Any()).
		Return(domain.ResolvedResource{
			Identifier: "theme",
			Origin:     "https://cdn.example.com/assets/theme.css",
			Content:    "body{background:url(img/bg.png)}",
			Token:      time.Now().UnixNano(),
		}, nil)

	o := newOrchestrator(t.TempDir(), fetcher)

	spec := domain.BundleSpec{Identifiers: []string{"theme"}, Kind: domain.KindStyle}
	out, _, err := o.Build(context.Background(), spec, policy)
	require.NoError(t, err)

	assert.Equal(t, "body{background:url(https://cdn.example.com/assets/img/bg.png)}", out)
}

func TestOrchestrator_Build_ExtensionlessOriginUsesKindChain(t *testing.T) {
	ctrl := gomock.NewController(t)

	policy := domain.SecurityPolicy{
		AllowRemote: true,
		Whitelist:   map[string]string{"jquery": "https://cdn.example.com/libs/jquery"},
	}

	fetcher := mocks.NewMockRemoteFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "jquery", gomock.Any()).
		Return(domain.ResolvedResource{
			Identifier: "jquery",
			Origin:     "https://cdn.example.com/libs/jquery",
			Content:    "/* cdn build */\nvar jq=1\n",
			Token:      time.Now().UnixNano(),
		}, nil)

	o := newOrchestrator(t.TempDir(), fetcher)

	spec := domain.BundleSpec{Identifiers: []string{"jquery"}, Kind: domain.KindScript, Minify: true}
	out, _, err := o.Build(context.Background(), spec, policy)
	require.NoError(t, err)

	assert.Equal(t, "var jq=1", out)
}

func TestOrchestrator_Build_MissingResourceIsAtomic(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "present.css", "body{}")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{
		Identifiers: []string{"present.css", "missing.css"},
		Kind:        domain.KindStyle,
	}
	out, deps, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
	assert.Empty(t, out)
	assert.Nil(t, deps)
}

func TestOrchestrator_Build_WaitsForFetchesOnLocalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	policy := domain.SecurityPolicy{
		AllowRemote: true,
		Whitelist:   map[string]string{"jquery": "https://cdn.example.com/jquery.js"},
	}

	fetchDone := make(chan struct{})
	fetcher := mocks.NewMockRemoteFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "jquery", gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.SecurityPolicy) (domain.ResolvedResource, error) {
			time.Sleep(20 * time.Millisecond)
			close(fetchDone)
			return domain.ResolvedResource{
				Identifier: "jquery",
				Origin:     "https://cdn.example.com/jquery.js",
				Content:    "var jq=1",
			}, nil
		})

	o := newOrchestrator(t.TempDir(), fetcher)

	spec := domain.BundleSpec{Identifiers: []string{"jquery", "missing.js"}, Kind: domain.KindScript}
	_, _, err := o.Build(context.Background(), spec, policy)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)

	select {
	case <-fetchDone:
	default:
		t.Fatal("build returned while a fetch was still in flight")
	}
}

func TestOrchestrator_Build_PostCombineRunsOnce(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "a.css", "a{}")
	writeAsset(t, root, "b.css", "b{}")

	filesystem := fs.NewFileSystem()
	resolver := fs.NewResolver([]string{root}, filesystem)

	calls := 0
	registry := transform.NewRegistry()
	registry.Register(".css", transform.Chain{
		PostCombine: []ports.Transform{
			func(res domain.ResolvedResource) (string, []domain.Dependency, error) {
				calls++
				return "/*banner*/\n" + res.Content, nil, nil
			},
		},
	})

	o := pipeline.NewOrchestrator(resolver, filesystem, nil, registry)

	spec := domain.BundleSpec{Identifiers: []string{"a.css", "b.css"}, Kind: domain.KindStyle}
	out, _, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "/*banner*/\na{}\nb{}", out)
}

func TestOrchestrator_Build_UnminifiedResourcesPassThrough(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "a.js", "var  a = 1 // keep\n")

	o := newOrchestrator(root, nil)

	spec := domain.BundleSpec{Identifiers: []string{"a.js"}, Kind: domain.KindScript}
	out, _, err := o.Build(context.Background(), spec, domain.SecurityPolicy{})
	require.NoError(t, err)
	assert.Equal(t, "var  a = 1 // keep\n", out)
}
