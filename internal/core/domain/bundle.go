// Package domain contains the core types of the asset pipeline.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// TargetKind identifies the kind of output a bundle produces.
type TargetKind string

const (
	// KindStyle produces a stylesheet bundle.
	KindStyle TargetKind = "style"
	// KindScript produces a script bundle.
	KindScript TargetKind = "script"
)

// Valid reports whether the kind is one of the known target kinds.
func (k TargetKind) Valid() bool {
	return k == KindStyle || k == KindScript
}

// Separator returns the string inserted between concatenated resources.
func (k TargetKind) Separator() string {
	if k == KindScript {
		return ";\n"
	}
	return "\n"
}

// BundleSpec is an ordered request for a combined asset. Order is significant:
// it becomes output concatenation order.
type BundleSpec struct {
	// Identifiers are local paths, bare filenames or glob patterns resolved
	// against the configured roots, or whitelist tokens for remote resources.
	Identifiers []string
	// Kind is the target output kind.
	Kind TargetKind
	// Minify indicates whether the per-resource minify step runs.
	Minify bool
}

// Fingerprint returns the stable cache key for the spec: a SHA-256 over the
// target kind, the minify flag and the ordered identifier sequence. Transform
// cost never influences the key, so identical specs always collide.
func (b BundleSpec) Fingerprint() string {
	h := sha256.New()
	_, _ = h.Write([]byte(b.Kind))
	_, _ = h.Write([]byte{0})
	if b.Minify {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})
	for _, id := range b.Identifiers {
		_, _ = h.Write([]byte(id))
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IsRemoteToken reports whether an identifier can only be satisfied remotely.
// Anything with a URL scheme or no local form is matched against the
// whitelist by the fetcher; bare names are ambiguous and tried locally first.
func IsRemoteToken(identifier string) bool {
	return strings.Contains(identifier, "://")
}

// HasPathSeparator reports whether the identifier contains a path separator
// and therefore bypasses the search-root lookup.
func HasPathSeparator(identifier string) bool {
	return strings.ContainsAny(identifier, `/\`)
}
