// Package main is the caching compiler proxy. It forwards every argument to
// the active vyper binary untouched, which is why it takes no flags of its
// own, and answers repeat compilations of unchanged files from the outcome
// cache.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.vvm.dev/vvm/internal/app"
	_ "go.vvm.dev/vvm/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}
	defer cleanup()

	outcome, err := components.App.Run(ctx, args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}

	// The compiler's streams and exit code pass through verbatim, cached or
	// not, so callers cannot tell a hit from a real invocation.
	_, _ = stdout.Write(outcome.Stdout)
	_, _ = stderr.Write(outcome.Stderr)
	return outcome.ExitCode
}
