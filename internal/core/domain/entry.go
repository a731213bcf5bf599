package domain

import "time"

// CacheEntry holds one compiled bundle output together with everything needed
// to decide whether it is still fresh. Entries are read-only after creation;
// the cache replaces rather than mutates them.
type CacheEntry struct {
	// Fingerprint is the bundle spec fingerprint the entry is stored under.
	Fingerprint string
	// Output is the final pipeline output.
	Output string
	// Dependencies is the complete dependency set recorded at build time.
	Dependencies *DependencySet
	// CreatedAt is the entry creation time, compared against the max-age.
	CreatedAt time.Time
	// Priority is the configured cache priority hint.
	Priority CachePriority
}

// Expired reports whether the entry exceeded the maximum age. A zero maxAge
// disables age-based eviction.
func (e *CacheEntry) Expired(maxAge time.Duration, now time.Time) bool {
	return maxAge > 0 && now.Sub(e.CreatedAt) > maxAge
}
