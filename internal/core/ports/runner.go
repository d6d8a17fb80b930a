// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner abstracts child-process execution so the orchestration logic can be
// tested with scripted exit codes instead of real processes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run spawns argv[0] with the remaining arguments, inheriting the
	// process's standard streams, and waits for completion. It returns the
	// child's exit status. A non-nil error means the process could not be
	// started at all (for example the executable vanished between lookup and
	// execution); in that case the status is meaningless.
	Run(ctx context.Context, argv []string) (int, error)

	// Capture spawns argv[0] and returns its combined stdout and stderr as
	// text. A non-nil error means the process could not be started; partial
	// output may still be returned alongside a non-zero exit.
	Capture(ctx context.Context, argv []string) (string, error)
}
