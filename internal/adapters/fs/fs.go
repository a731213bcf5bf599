// Package fs provides the OS-backed file system adapter.
package fs

import (
	"os"
	"path/filepath"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem adapter.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Read returns the content and modification token of the file.
func (f *FileSystem) Read(path string) (string, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	//nolint:gosec // Path was resolved against configured roots by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}

	return string(data), info.ModTime().UnixNano(), nil
}

// Exists reports whether the path exists.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Stat returns the current modification token for the path.
func (f *FileSystem) Stat(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return info.ModTime().UnixNano(), nil
}

// Enumerate returns the paths under root whose base name matches the glob
// pattern.
func (f *FileSystem) Enumerate(root, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}
	return matches, nil
}

var _ ports.ResourceResolver = (*Resolver)(nil)

// Resolver resolves bundle identifiers against an ordered list of resource
// roots.
type Resolver struct {
	roots []string
	fs    ports.FileSystem
}

// NewResolver creates a Resolver over the configured roots.
func NewResolver(roots []string, filesystem ports.FileSystem) *Resolver {
	abs := make([]string, 0, len(roots))
	for _, root := range roots {
		if a, err := filepath.Abs(root); err == nil {
			abs = append(abs, a)
		} else {
			abs = append(abs, filepath.Clean(root))
		}
	}
	return &Resolver{roots: abs, fs: filesystem}
}

// Resolve maps an identifier to an absolute path and the root it was found
// under.
//
// A bare filename searches every root in configured order and the first match
// wins. Two roots holding same-named files is not an error: configured root
// order breaks the tie. Identifiers containing a separator resolve directly,
// absolute paths as-is and relative ones against the first root.
func (r *Resolver) Resolve(identifier string) (string, string, error) {
	if domain.HasPathSeparator(identifier) {
		return r.resolveDirect(identifier)
	}

	if len(r.roots) == 0 {
		return "", "", zerr.With(domain.ErrNoRootsConfigured, "identifier", identifier)
	}

	for _, root := range r.roots {
		candidate := filepath.Join(root, identifier)
		if r.fs.Exists(candidate) {
			return candidate, root, nil
		}
	}

	return "", "", zerr.With(domain.ErrResourceNotFound, "identifier", identifier)
}

func (r *Resolver) resolveDirect(identifier string) (string, string, error) {
	path := filepath.Clean(identifier)
	root := ""

	if !filepath.IsAbs(path) {
		if len(r.roots) == 0 {
			return "", "", zerr.With(domain.ErrNoRootsConfigured, "identifier", identifier)
		}
		root = r.roots[0]
		path = filepath.Join(root, path)
	} else {
		root = r.rootOf(path)
	}

	if !r.fs.Exists(path) {
		return "", "", zerr.With(domain.ErrResourceNotFound, "identifier", identifier)
	}

	return path, root, nil
}

// Expand returns the paths matching a glob pattern across all roots.
// filepath.Glob returns matches sorted, so root order plus lexical order
// within a root makes the expansion deterministic.
func (r *Resolver) Expand(pattern string) ([]string, error) {
	if len(r.roots) == 0 {
		return nil, zerr.With(domain.ErrNoRootsConfigured, "pattern", pattern)
	}

	var paths []string
	for _, root := range r.roots {
		matches, err := r.fs.Enumerate(root, filepath.FromSlash(pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	if len(paths) == 0 {
		return nil, zerr.With(domain.ErrResourceNotFound, "pattern", pattern)
	}
	return paths, nil
}

// rootOf returns the configured root containing the path, or "" when the
// path lives outside every root.
func (r *Resolver) rootOf(path string) string {
	for _, root := range r.roots {
		if rel, err := filepath.Rel(root, path); err == nil && rel != ".." && !filepath.IsAbs(rel) &&
			(rel == "." || !hasDotDotPrefix(rel)) {
			return root
		}
	}
	return ""
}

func hasDotDotPrefix(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}
