// Package fetch implements the security-constrained remote resource fetcher.
package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RemoteFetcher = (*Fetcher)(nil)

// Fetcher implements ports.RemoteFetcher over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a default HTTP client. The per-fetch
// deadline comes from the SecurityPolicy, not from the client.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{}}
}

// NewFetcherWithClient creates a Fetcher with a custom HTTP client (used for
// testing).
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads the resource behind a whitelist token.
//
// The identifier must map to a whitelisted URL; raw URLs in bundle specs are
// rejected so that callers never embed external URLs verbatim. The download
// is bounded by the policy timeout and byte limit, and an over-limit transfer
// is discarded rather than partially returned.
func (f *Fetcher) Fetch(ctx context.Context, identifier string, policy domain.SecurityPolicy) (domain.ResolvedResource, error) {
	if !policy.AllowRemote {
		return domain.ResolvedResource{}, zerr.With(domain.ErrRemoteDisabled, "identifier", identifier)
	}

	url, ok := policy.Resolve(identifier)
	if !ok {
		return domain.ResolvedResource{}, zerr.With(domain.ErrRemoteNotWhitelisted, "identifier", identifier)
	}

	if policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, policy.Timeout)
		defer cancel()
	}

	content, err := f.download(ctx, url, policy.MaxBytes)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.ResolvedResource{}, zerr.With(domain.ErrFetchTimeout, "url", url)
		}
		return domain.ResolvedResource{}, zerr.With(err, "url", url)
	}

	return domain.ResolvedResource{
		Identifier: identifier,
		Origin:     url,
		Content:    content,
		Token:      time.Now().UnixNano(),
	}, nil
}

func (f *Fetcher) download(ctx context.Context, url string, maxBytes int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", context.DeadlineExceeded
		}
		return "", zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", zerr.With(domain.ErrFetchFailed, "status", resp.StatusCode)
	}

	// The server-declared length is a fast reject; the limited reader below
	// is the enforcement.
	if maxBytes > 0 && resp.ContentLength > maxBytes {
		return "", zerr.With(domain.ErrPayloadTooLarge, "content_length", resp.ContentLength)
	}

	reader := resp.Body
	if maxBytes > 0 {
		reader = io.NopCloser(io.LimitReader(resp.Body, maxBytes+1))
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", context.DeadlineExceeded
		}
		return "", zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", zerr.With(domain.ErrPayloadTooLarge, "max_bytes", maxBytes)
	}

	return string(data), nil
}
