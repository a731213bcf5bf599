package transform

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
)

// urlRefPattern matches url(...) resource references, quoted or bare.
var urlRefPattern = regexp.MustCompile(`url\(\s*(['"]?)([^'")]+)(['"]?)\s*\)`)

// RewritePaths rewrites relative url(...) references so they stay resolvable
// after concatenation moves the content away from its source location.
//
// Local resources get root-relative references ("/css/img/logo.png"); remote
// resources get absolute URLs against their origin. Already-absolute,
// protocol-relative and data: references are left untouched, as is anything
// malformed: a reference that cannot be rewritten degrades to a no-op rather
// than failing the transform.
func RewritePaths(res domain.ResolvedResource) (string, []domain.Dependency, error) {
	out := urlRefPattern.ReplaceAllStringFunc(res.Content, func(match string) string {
		groups := urlRefPattern.FindStringSubmatch(match)
		ref := strings.TrimSpace(groups[2])

		if !isRelativeRef(ref) {
			return match
		}

		rewritten, ok := rewriteRef(ref, res)
		if !ok {
			return match
		}
		return "url(" + groups[1] + rewritten + groups[3] + ")"
	})

	return out, nil, nil
}

// isRelativeRef reports whether the reference needs rewriting.
func isRelativeRef(ref string) bool {
	switch {
	case ref == "":
		return false
	case strings.HasPrefix(ref, "/"): // absolute or protocol-relative
		return false
	case strings.HasPrefix(ref, "#"): // fragment-only (SVG filters)
		return false
	case strings.HasPrefix(ref, "data:"):
		return false
	case strings.Contains(ref, "://"):
		return false
	default:
		return true
	}
}

func rewriteRef(ref string, res domain.ResolvedResource) (string, bool) {
	if res.IsRemote() {
		return rewriteRemoteRef(ref, res.Origin)
	}
	return rewriteLocalRef(ref, res)
}

// rewriteLocalRef turns a reference relative to the source file into one
// relative to the application root.
func rewriteLocalRef(ref string, res domain.ResolvedResource) (string, bool) {
	if res.Root == "" || res.Path == "" {
		// Resolved outside every configured root; there is no application
		// root to rewrite against.
		return "", false
	}

	relDir, err := filepath.Rel(res.Root, filepath.Dir(res.Path))
	if err != nil {
		return "", false
	}

	refPath, suffix := splitRefSuffix(ref)

	joined := path.Join("/", filepath.ToSlash(relDir), refPath)
	if strings.HasPrefix(joined, "/..") {
		// The reference escapes the root; leave it alone.
		return "", false
	}

	return joined + suffix, true
}

// rewriteRemoteRef resolves a reference against the remote origin URL.
func rewriteRemoteRef(ref, origin string) (string, bool) {
	base, err := url.Parse(origin)
	if err != nil {
		return "", false
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return "", false
	}
	return resolved.String(), true
}

// splitRefSuffix separates a trailing query string or fragment so rewriting
// preserves it.
func splitRefSuffix(ref string) (string, string) {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		return ref[:i], ref[i:]
	}
	return ref, ""
}
