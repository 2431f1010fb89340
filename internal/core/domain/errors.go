package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersion is returned when a version string is not valid semver.
	ErrInvalidVersion = zerr.New("invalid version identifier")

	// ErrUnknownVersion is returned when a version is not present in the remote catalog.
	ErrUnknownVersion = zerr.New("version not found in release catalog")

	// ErrUnsupportedPlatform is returned when no release assets exist for this OS.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrRateLimited is returned when the release catalog keeps throttling after retries.
	ErrRateLimited = zerr.New("release catalog rate limit exceeded (set GITHUB_TOKEN to raise the limit)")

	// ErrNetworkFailed is returned for non-rate-limit transport failures after one retry.
	ErrNetworkFailed = zerr.New("release catalog request failed")

	// ErrDownloadFailed is returned when fetching a release artifact fails.
	ErrDownloadFailed = zerr.New("failed to download release artifact")

	// ErrChecksumMismatch is returned when a downloaded artifact does not match its published checksum.
	ErrChecksumMismatch = zerr.New("artifact checksum mismatch")

	// ErrEmptyArtifact is returned when a download produced no bytes.
	ErrEmptyArtifact = zerr.New("downloaded artifact is empty")

	// ErrNotInstalled is returned when an operation names a version that is not in the store.
	ErrNotInstalled = zerr.New("version is not installed")

	// ErrNoActiveVersion is returned when no version is active, or the active
	// pointer names a version that is no longer installed.
	ErrNoActiveVersion = zerr.New("no active version set (run 'vvm use <version>')")

	// ErrExecutionFailed is returned when the compiler process could not be
	// run at all. A compiler that runs and exits non-zero is not an error.
	ErrExecutionFailed = zerr.New("failed to execute compiler")

	// ErrNoInputFile is returned when the proxy is invoked without arguments.
	ErrNoInputFile = zerr.New("no input file given")

	// ErrStoreWriteFailed is returned when version store state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write version store state")

	// ErrStoreReadFailed is returned when version store state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read version store state")

	// ErrCacheReadFailed is returned when a cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
