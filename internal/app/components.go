package app

import (
	"go.vvm.dev/vvm/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the
// entry points.
type Components struct {
	App    *App
	Logger ports.Logger
}
