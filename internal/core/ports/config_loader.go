package ports

import "go.vvm.dev/vvm/internal/core/domain"

// ConfigLoader resolves the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the resolved configuration. A missing config file is not
	// an error; defaults apply.
	Load() (*domain.Config, error)
}
