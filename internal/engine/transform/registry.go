// Package transform implements the transform registry and the built-in
// transforms: path rewriting, CSS import inlining and whitespace minifying.
//
// Registration is static configuration. The registry is built at process
// startup and injected into the orchestrator; nothing here scans for
// capabilities at runtime.
package transform

import (
	"path/filepath"
	"strings"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
)

// Chain is the ordered transform list for one file extension.
type Chain struct {
	// PreCombine transforms run per resource before concatenation, in
	// order: preprocessors first, path rewriting last.
	PreCombine []ports.Transform
	// Minify runs per resource only when the bundle's minify flag is set.
	Minify ports.Transform
	// PostCombine transforms run exactly once on the concatenated output.
	PostCombine []ports.Transform
}

// Registry maps file extensions to transform chains.
type Registry struct {
	chains map[string]Chain
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{chains: make(map[string]Chain)}
}

// Register binds a chain to an extension (".css", ".js", ...). Registering an
// extension twice replaces the previous chain.
func (r *Registry) Register(ext string, chain Chain) {
	r.chains[normalizeExt(ext)] = chain
}

// Lookup returns the chain for the extension. An unknown extension returns an
// empty chain: the resource passes through untransformed.
func (r *Registry) Lookup(ext string) Chain {
	return r.chains[normalizeExt(ext)]
}

// ExtensionOf returns the lower-cased extension of an identifier, ignoring
// any query string or fragment a remote URL may carry.
func ExtensionOf(identifier string) string {
	if i := strings.IndexAny(identifier, "?#"); i >= 0 {
		identifier = identifier[:i]
	}
	return strings.ToLower(filepath.Ext(identifier))
}

// KindExtension returns the canonical extension for a target kind, used for
// post-combine lookup on the concatenated output.
func KindExtension(kind domain.TargetKind) string {
	if kind == domain.KindScript {
		return ".js"
	}
	return ".css"
}

// NewDefaultRegistry wires the built-in chains: CSS gets the import inliner,
// the path rewriter and the whitespace minifier; JS gets the whitespace
// minifier only.
func NewDefaultRegistry(filesystem ports.FileSystem, resolver ports.ResourceResolver) *Registry {
	r := NewRegistry()

	importer := NewImporter(filesystem, resolver)

	r.Register(".css", Chain{
		PreCombine: []ports.Transform{importer.Apply, RewritePaths},
		Minify:     MinifyCSS,
	})
	r.Register(".js", Chain{
		Minify: MinifyJS,
	})

	return r
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
