package domain

import "time"

// SecurityPolicy governs remote resource fetching.
type SecurityPolicy struct {
	// AllowRemote enables remote fetching. When false every remote
	// identifier fails immediately.
	AllowRemote bool
	// Whitelist maps indirection tokens to the only URLs that may be
	// fetched. Bundle specs name tokens, never raw URLs.
	Whitelist map[string]string
	// MaxBytes caps the response size; an over-limit transfer is discarded.
	MaxBytes int64
	// Timeout bounds the whole download.
	Timeout time.Duration
}

// Resolve maps a token to its whitelisted URL.
func (p SecurityPolicy) Resolve(token string) (string, bool) {
	url, ok := p.Whitelist[token]
	return url, ok
}
