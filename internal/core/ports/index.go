// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.vvm.dev/vvm/internal/core/domain"
)

// IndexClient queries the remote release catalog.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexClient interface {
	// Fetch returns all releases available for this platform, newest first.
	// It never serves stale data: callers that tolerate a cached list must
	// use FetchCached explicitly.
	Fetch(ctx context.Context) ([]domain.Release, error)

	// FetchCached behaves like Fetch but may serve a cached list younger
	// than the configured TTL. Only the list command uses this path.
	FetchCached(ctx context.Context) ([]domain.Release, error)
}
