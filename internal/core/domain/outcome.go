package domain

import "time"

// CacheFormat versions the on-disk outcome cache entry layout. Entries
// carrying a different format string are treated as misses.
const CacheFormat = "vvm-outcome-cache-1"

// Outcome is the observable result of one compiler invocation.
type Outcome struct {
	ExitCode int    `json:"exitCode"`
	Stdout   []byte `json:"stdout"`
	Stderr   []byte `json:"stderr"`
}

// Success reports whether the invocation exited cleanly. Only successful
// outcomes are cached.
func (o Outcome) Success() bool {
	return o.ExitCode == 0
}

// CacheEntry is the stored form of a cached outcome.
type CacheEntry struct {
	Format   string    `json:"_format"`
	Version  string    `json:"version"`
	Digest   string    `json:"digest"`
	Outcome  Outcome   `json:"outcome"`
	CachedAt time.Time `json:"cachedAt"`
}
