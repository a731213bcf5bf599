// Package ports defines the core interfaces for the application.
package ports

// FileSystem defines the file system collaborator consumed by the core.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Read returns the content and modification token of the file.
	Read(path string) (string, int64, error)

	// Exists reports whether the path exists.
	Exists(path string) bool

	// Stat returns the current modification token for the path.
	Stat(path string) (int64, error)

	// Enumerate returns the paths under root whose base name matches the
	// glob pattern.
	Enumerate(root, pattern string) ([]string, error)
}

// ResourceResolver resolves bundle identifiers to local files.
type ResourceResolver interface {
	// Resolve maps an identifier to an absolute path and the search root it
	// was found under. Bare filenames search the configured roots in order,
	// first match wins; identifiers with path separators resolve directly.
	Resolve(identifier string) (path, root string, err error)

	// Expand returns the absolute paths matching a glob pattern, searching
	// every root in configured order. Order is deterministic: root order
	// first, lexical order within a root.
	Expand(pattern string) ([]string, error)
}
