package ports

import (
	"context"

	"go.vvm.dev/vvm/internal/core/domain"
)

// VersionStore owns the installed-versions directory and the active pointer.
// All mutations publish state with write-to-temp-then-rename so concurrent
// readers see either the pre- or post-state, never an intermediate one.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type VersionStore interface {
	// Install downloads and installs the release. Installing an
	// already-present version is a no-op success.
	Install(ctx context.Context, release domain.Release) error

	// Remove deletes the version from the store. If it was active, the
	// pointer is cleared first so it never dangles.
	Remove(versionID string) error

	// Activate sets the active pointer. Fails with ErrNotInstalled when the
	// version is not in the store.
	Activate(versionID string) error

	// ResolveActive reads the active pointer. Fails with ErrNoActiveVersion
	// when unset or when it names a version no longer on disk.
	ResolveActive() (domain.Version, error)

	// ListInstalled enumerates the store, ascending by version.
	ListInstalled() ([]domain.Version, error)

	// IsInstalled reports whether the version's binary is present.
	IsInstalled(versionID string) bool
}
