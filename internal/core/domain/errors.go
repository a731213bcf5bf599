package domain

import "go.trai.ch/zerr"

var (
	// ErrResourceNotFound is returned when an identifier cannot be resolved in any configured root.
	ErrResourceNotFound = zerr.New("resource not found in any configured root")

	// ErrNoRootsConfigured is returned when a bare filename is requested but no search roots exist.
	ErrNoRootsConfigured = zerr.New("no resource roots configured")

	// ErrTransformFailed is returned when a transform rejects its input.
	ErrTransformFailed = zerr.New("transform failed")

	// ErrRemoteDisabled is returned when a remote identifier is requested while remote fetching is disabled.
	ErrRemoteDisabled = zerr.New("remote fetching is disabled by policy")

	// ErrRemoteNotWhitelisted is returned when a remote identifier does not match a whitelist token.
	ErrRemoteNotWhitelisted = zerr.New("remote identifier is not whitelisted")

	// ErrFetchTimeout is returned when a remote fetch exceeds the policy timeout.
	ErrFetchTimeout = zerr.New("remote fetch timed out")

	// ErrPayloadTooLarge is returned when a remote response exceeds the policy byte limit.
	ErrPayloadTooLarge = zerr.New("remote payload exceeds byte limit")

	// ErrFetchFailed is returned when a remote fetch fails for transport or status reasons.
	ErrFetchFailed = zerr.New("remote fetch failed")

	// ErrEmptyBundle is returned when a bundle request carries no identifiers.
	ErrEmptyBundle = zerr.New("bundle contains no identifiers")

	// ErrUnknownTargetKind is returned when a bundle names a target kind other than style or script.
	ErrUnknownTargetKind = zerr.New("unknown target kind, expected 'style' or 'script'")

	// ErrCacheMiss is returned when a requested fingerprint is not cached.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no cruncher.yaml is found.
	ErrConfigNotFound = zerr.New("could not find cruncher.yaml")

	// ErrArtifactWriteFailed is returned when an artifact cannot be persisted.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrBundleBuildFailed is returned when a bundle build fails.
	ErrBundleBuildFailed = zerr.New("bundle build failed")
)
