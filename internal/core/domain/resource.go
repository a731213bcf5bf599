package domain

// ResolvedResource is a bundle identifier resolved to concrete content.
type ResolvedResource struct {
	// Identifier is the identifier as it appeared in the bundle spec.
	Identifier string
	// Path is the absolute local file path, empty for remote resources.
	Path string
	// Root is the search root the path was resolved under, empty for remote
	// resources and for absolute identifiers resolved outside any root.
	Root string
	// Origin is the URL a remote resource was fetched from, empty for local.
	Origin string
	// Content is the raw resource body.
	Content string
	// Token is the modification token: mtime UnixNano for local files,
	// fetch time UnixNano for remote payloads.
	Token int64
}

// IsRemote reports whether the resource was fetched from a remote origin.
func (r ResolvedResource) IsRemote() bool {
	return r.Origin != ""
}
