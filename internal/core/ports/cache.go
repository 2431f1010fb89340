package ports

import "go.vvm.dev/vvm/internal/core/domain"

// OutcomeCache owns the content-addressed cache of compiler outcomes, keyed
// by (version id, content digest). Entries are immutable once written; the
// only invalidation is PurgeAll.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type OutcomeCache interface {
	// Lookup returns the cached outcome for the key, or nil, nil on a miss.
	Lookup(versionID, digest string) (*domain.Outcome, error)

	// Store writes the outcome under the key. A crash mid-write never
	// produces an entry a later Lookup would return.
	Store(versionID, digest string, outcome domain.Outcome) error

	// PurgeAll deletes the entire cache tree.
	PurgeAll() error
}
