package domain

import (
	"io/fs"
	"time"
)

const (
	// ConfigFileName is the configuration file looked up from the working
	// directory upwards.
	ConfigFileName = "cruncher.yaml"

	// DirPerm is the permission used when creating directories.
	DirPerm fs.FileMode = 0o750
	// FilePerm is the permission used when writing files.
	FilePerm fs.FileMode = 0o644
)

// CachePriority hints how reluctant the cache should be to drop an entry
// under administrative flushes. It never overrides correctness evictions.
type CachePriority int

const (
	// PriorityNormal is the default priority.
	PriorityNormal CachePriority = iota
	// PriorityHigh marks entries kept through priority-aware flushes.
	PriorityHigh
)

// Settings is the fully parsed process configuration. The core consumes it;
// parsing lives in the config adapter.
type Settings struct {
	// Roots are the resource search roots in configured order. Bare
	// filenames resolve against them first-root-wins.
	Roots []string
	// Security is the remote fetch policy.
	Security SecurityPolicy
	// CacheMaxAge bounds the lifetime of a cache entry regardless of
	// dependency freshness. Zero disables age eviction.
	CacheMaxAge time.Duration
	// CachePriority is the priority recorded on new entries.
	CachePriority CachePriority
	// ArtifactDir is where built bundles are persisted, empty to disable.
	ArtifactDir string
	// ArtifactRetention is how long persisted artifacts are kept before the
	// sweep removes them.
	ArtifactRetention time.Duration
}
