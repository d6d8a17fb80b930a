// Package main is the entry point for the dacsmoke playback tester.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"dacsmoke/cmd/dacsmoke/commands"
	"dacsmoke/internal/app"
	"dacsmoke/internal/core/domain"
	"dacsmoke/internal/core/ports"
	_ "dacsmoke/internal/wiring"
	"github.com/grindlemire/graft"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitAllFailed
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution, mapping errors onto the exit status contract
	if err := cli.Execute(ctx); err != nil {
		return exitStatus(err, components.Logger)
	}
	return domain.ExitSuccess
}

// exitStatus maps an execution error to the process exit status. Errors whose
// diagnostics were already printed during the run are not logged again.
func exitStatus(err error, log ports.Logger) int {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		log.Error(err)
		return domain.ExitFileNotFound
	case errors.Is(err, domain.ErrNoBackend):
		return domain.ExitNoBackend
	case errors.Is(err, domain.ErrBackendVanished):
		log.Error(err)
		return domain.ExitNoBackend
	case errors.Is(err, domain.ErrAllBackendsFailed):
		return domain.ExitAllFailed
	}

	var statusErr *domain.ExitStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}

	log.Error(err)
	return domain.ExitAllFailed
}
