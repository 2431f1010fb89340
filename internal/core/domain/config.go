package domain

import "time"

const (
	// DefaultIndexURL is the release catalog endpoint.
	DefaultIndexURL = "https://api.github.com/repos/vyperlang/vyper/releases"

	// DefaultTokenEnvVar is the environment variable consulted for an
	// authentication token. Absence degrades to unauthenticated requests.
	DefaultTokenEnvVar = "GITHUB_TOKEN"

	// DefaultListCacheTTL bounds how long the list command trusts the
	// release-list cache. Install paths always refetch.
	DefaultListCacheTTL = 24 * time.Hour
)

// Config holds the resolved tool configuration. Every field has a working
// default; the config file only overrides.
type Config struct {
	// Home is the vvm home directory.
	Home string
	// IndexURL is the release catalog endpoint.
	IndexURL string
	// TokenEnvVar names the environment variable holding the auth token.
	TokenEnvVar string
	// ListCacheTTL is the release-list cache lifetime for the list command.
	ListCacheTTL time.Duration
}
