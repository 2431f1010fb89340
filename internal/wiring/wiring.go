// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.vvm.dev/vvm/internal/adapters/cache"
	_ "go.vvm.dev/vvm/internal/adapters/config"
	_ "go.vvm.dev/vvm/internal/adapters/fs"
	_ "go.vvm.dev/vvm/internal/adapters/logger"
	_ "go.vvm.dev/vvm/internal/adapters/releases"
	_ "go.vvm.dev/vvm/internal/adapters/shell"
	_ "go.vvm.dev/vvm/internal/adapters/store"
	// Register app nodes.
	_ "go.vvm.dev/vvm/internal/app"
)
