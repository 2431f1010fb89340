package ports

import (
	"context"

	"go.vvm.dev/vvm/internal/core/domain"
)

// Runner executes a compiler binary and captures its outcome.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run invokes the binary with the given arguments. A non-zero compiler
	// exit is reported inside the Outcome, not as an error; the error path
	// is reserved for failures to execute at all.
	Run(ctx context.Context, binaryPath string, args []string) (domain.Outcome, error)
}
