// Package pipeline implements the bundle build orchestrator.
package pipeline

import (
	"context"
	"strings"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/engine/transform"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Orchestrator resolves a bundle spec into resources, applies the transform
// chains and produces the combined output together with the complete
// dependency set.
type Orchestrator struct {
	resolver ports.ResourceResolver
	fs       ports.FileSystem
	fetcher  ports.RemoteFetcher
	registry *transform.Registry
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	resolver ports.ResourceResolver,
	filesystem ports.FileSystem,
	fetcher ports.RemoteFetcher,
	registry *transform.Registry,
) *Orchestrator {
	return &Orchestrator{
		resolver: resolver,
		fs:       filesystem,
		fetcher:  fetcher,
		registry: registry,
	}
}

// Build runs the whole pipeline for one bundle. The build is atomic: any
// failure discards all partial output and nothing is returned or cached.
func (o *Orchestrator) Build(ctx context.Context, spec domain.BundleSpec, policy domain.SecurityPolicy) (string, *domain.DependencySet, error) {
	if len(spec.Identifiers) == 0 {
		return "", nil, domain.ErrEmptyBundle
	}
	if !spec.Kind.Valid() {
		return "", nil, zerr.With(domain.ErrUnknownTargetKind, "kind", string(spec.Kind))
	}

	resources, err := o.resolveAll(ctx, spec, policy)
	if err != nil {
		return "", nil, err
	}

	deps := domain.NewDependencySet()
	pieces := make([]string, len(resources))

	for i, res := range resources {
		deps.AddResource(res)

		content, err := o.transformResource(res, spec, deps)
		if err != nil {
			return "", nil, err
		}
		pieces[i] = content
	}

	output := strings.Join(pieces, spec.Kind.Separator())

	output, err = o.postCombine(spec, output, deps)
	if err != nil {
		return "", nil, err
	}

	return output, deps, nil
}

// resolveAll turns every identifier into a resolved resource, preserving
// bundle order. Remote fetches run concurrently since they share no state;
// results are reassembled by index before anything is concatenated.
func (o *Orchestrator) resolveAll(ctx context.Context, spec domain.BundleSpec, policy domain.SecurityPolicy) ([]domain.ResolvedResource, error) {
	identifiers, err := o.expandGlobs(spec.Identifiers, policy)
	if err != nil {
		return nil, err
	}

	resources := make([]domain.ResolvedResource, len(identifiers))

	g, gctx := errgroup.WithContext(ctx)

	var resolveErr error
	for i, identifier := range identifiers {
		switch {
		case domain.IsRemoteToken(identifier):
			// Bundle specs never carry raw URLs; token indirection exists
			// exactly so external URLs stay out of bundle definitions.
			resolveErr = zerr.With(domain.ErrRemoteNotWhitelisted, "identifier", identifier)

		case o.isWhitelisted(identifier, policy):
			g.Go(func() error {
				res, err := o.fetcher.Fetch(gctx, identifier, policy)
				if err != nil {
					return err
				}
				resources[i] = res
				return nil
			})

		default:
			var res domain.ResolvedResource
			if res, resolveErr = o.resolveLocal(identifier); resolveErr == nil {
				resources[i] = res
			}
		}

		if resolveErr != nil {
			break
		}
	}

	// Wait on every path so a resolution failure never leaves in-flight
	// fetch goroutines running detached.
	if err := g.Wait(); resolveErr == nil {
		resolveErr = err
	}
	if resolveErr != nil {
		return nil, resolveErr
	}

	return resources, nil
}

// expandGlobs replaces glob identifiers with their matched paths, in place in
// the bundle order. Whitelist tokens are never treated as patterns, whatever
// characters they contain.
func (o *Orchestrator) expandGlobs(identifiers []string, policy domain.SecurityPolicy) ([]string, error) {
	expanded := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		if o.isWhitelisted(identifier, policy) || domain.IsRemoteToken(identifier) ||
			!strings.ContainsAny(identifier, "*?[") {
			expanded = append(expanded, identifier)
			continue
		}

		matches, err := o.resolver.Expand(identifier)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, matches...)
	}
	return expanded, nil
}

func (o *Orchestrator) isWhitelisted(identifier string, policy domain.SecurityPolicy) bool {
	_, ok := policy.Resolve(identifier)
	return ok
}

func (o *Orchestrator) resolveLocal(identifier string) (domain.ResolvedResource, error) {
	path, root, err := o.resolver.Resolve(identifier)
	if err != nil {
		return domain.ResolvedResource{}, err
	}

	content, token, err := o.fs.Read(path)
	if err != nil {
		return domain.ResolvedResource{}, err
	}

	return domain.ResolvedResource{
		Identifier: identifier,
		Path:       path,
		Root:       root,
		Content:    content,
		Token:      token,
	}, nil
}

// transformResource runs the per-resource chain: preprocess and rewrite
// first, then minify when requested. Dependencies discovered by
// preprocessors are folded into the bundle's set before the resource is
// considered transformed.
func (o *Orchestrator) transformResource(res domain.ResolvedResource, spec domain.BundleSpec, deps *domain.DependencySet) (string, error) {
	chain := o.registry.Lookup(dispatchExtension(res, spec.Kind))

	steps := chain.PreCombine
	if spec.Minify && chain.Minify != nil {
		steps = append(append([]ports.Transform{}, chain.PreCombine...), chain.Minify)
	}

	for _, step := range steps {
		content, discovered, err := step(res)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "resource", res.Identifier)
		}
		for _, d := range discovered {
			deps.Add(d.Identity, d.Token, d.Remote)
		}
		res.Content = content
	}

	return res.Content, nil
}

// dispatchExtension picks the extension used for chain lookup. Whitelist
// tokens carry no extension, so remote resources dispatch on the origin
// URL's path, falling back to the kind's canonical extension.
func dispatchExtension(res domain.ResolvedResource, kind domain.TargetKind) string {
	if !res.IsRemote() {
		return transform.ExtensionOf(res.Identifier)
	}
	if ext := transform.ExtensionOf(res.Origin); ext != "" {
		return ext
	}
	return transform.KindExtension(kind)
}

// postCombine applies the configured post-combine transforms exactly once to
// the concatenated output, never per resource.
func (o *Orchestrator) postCombine(spec domain.BundleSpec, output string, deps *domain.DependencySet) (string, error) {
	chain := o.registry.Lookup(transform.KindExtension(spec.Kind))

	combined := domain.ResolvedResource{
		Identifier: "bundle" + transform.KindExtension(spec.Kind),
		Content:    output,
	}

	for _, step := range chain.PostCombine {
		content, discovered, err := step(combined)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "resource", combined.Identifier)
		}
		for _, d := range discovered {
			deps.Add(d.Identity, d.Token, d.Remote)
		}
		combined.Content = content
	}

	return combined.Content, nil
}
