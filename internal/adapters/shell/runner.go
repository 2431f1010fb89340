// Package shell executes installed compiler binaries.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner with os/exec.
type Runner struct{}

// NewRunner creates a process runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run invokes the binary and captures stdout and stderr. A compiler that
// starts and exits non-zero is a valid outcome; only a failure to start the
// process at all is an error.
func (r *Runner) Run(ctx context.Context, binaryPath string, args []string) (domain.Outcome, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binaryPath, args...) //nolint:gosec // The binary path comes from the version store
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outcome := domain.Outcome{
		ExitCode: 0,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	if err == nil {
		return outcome, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		outcome.ExitCode = exitErr.ExitCode()
		return outcome, nil
	}

	execErr := errors.Join(domain.ErrExecutionFailed, err)
	return domain.Outcome{}, zerr.With(execErr, "binary", binaryPath)
}
