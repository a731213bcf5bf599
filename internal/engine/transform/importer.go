package transform

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"go.trai.ch/zerr"
)

// importPattern matches @import "x.css"; and @import url(x.css); with an
// optional media list captured after the reference.
var importPattern = regexp.MustCompile(`@import\s+(?:url\(\s*['"]?([^'")]+?)['"]?\s*\)|['"]([^'"]+)['"])\s*([^;]*);`)

// Importer inlines CSS @import statements ahead of concatenation, reporting
// every file it folds in as a discovered dependency. Imports are resolved
// against the importing file's directory first, then the configured roots.
type Importer struct {
	fs       ports.FileSystem
	resolver ports.ResourceResolver
}

// NewImporter creates a new Importer.
func NewImporter(filesystem ports.FileSystem, resolver ports.ResourceResolver) *Importer {
	return &Importer{fs: filesystem, resolver: resolver}
}

// Apply is the preprocess transform. It recursively replaces local @import
// statements with the imported content. Remote and media-scoped imports are
// left in place; a missing imported file is a resolution failure because a
// silently dropped import would leave the dependency set incomplete.
func (im *Importer) Apply(res domain.ResolvedResource) (string, []domain.Dependency, error) {
	if res.IsRemote() {
		// Imports inside remote content reference the origin's tree and
		// cannot be inlined from the local roots.
		return res.Content, nil, nil
	}

	seen := map[string]struct{}{}
	if res.Path != "" {
		seen[res.Path] = struct{}{}
	}

	var discovered []domain.Dependency
	content, err := im.inline(res.Content, filepath.Dir(res.Path), seen, &discovered)
	if err != nil {
		return "", nil, err
	}
	return content, discovered, nil
}

func (im *Importer) inline(content, baseDir string, seen map[string]struct{}, discovered *[]domain.Dependency) (string, error) {
	var firstErr error

	out := importPattern.ReplaceAllStringFunc(content, func(match string) string {
		if firstErr != nil {
			return match
		}

		groups := importPattern.FindStringSubmatch(match)
		ref := groups[1]
		if ref == "" {
			ref = groups[2]
		}
		media := strings.TrimSpace(groups[3])

		// Remote imports and media-scoped imports stay as-is; the browser
		// has to evaluate those itself.
		if !isRelativeRef(ref) || media != "" {
			return match
		}

		path, err := im.resolveImport(ref, baseDir)
		if err != nil {
			firstErr = err
			return match
		}

		if _, ok := seen[path]; ok {
			// Import cycle: the second occurrence inlines nothing.
			return ""
		}
		seen[path] = struct{}{}

		body, token, err := im.fs.Read(path)
		if err != nil {
			firstErr = zerr.With(err, "import", ref)
			return match
		}
		*discovered = append(*discovered, domain.Dependency{Identity: path, Token: token})

		nested, err := im.inline(body, filepath.Dir(path), seen, discovered)
		if err != nil {
			firstErr = err
			return match
		}
		return nested
	})

	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// resolveImport resolves an import reference relative to the importing file,
// falling back to the configured search roots.
func (im *Importer) resolveImport(ref, baseDir string) (string, error) {
	if baseDir != "" && baseDir != "." {
		candidate := filepath.Join(baseDir, filepath.FromSlash(ref))
		if im.fs.Exists(candidate) {
			return candidate, nil
		}
	}

	path, _, err := im.resolver.Resolve(ref)
	if err != nil {
		return "", zerr.With(err, "import", ref)
	}
	return path, nil
}
