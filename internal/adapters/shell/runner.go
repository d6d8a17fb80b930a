// Package shell implements ports.Runner on top of os/exec.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// Runner spawns child processes synchronously. Playback tools need the real
// terminal, so Run inherits the process's standard streams instead of
// capturing them.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run spawns argv[0] with the remaining arguments, inheriting stdin, stdout
// and stderr, and waits for completion. The returned int is the child's exit
// status; a non-nil error means the child could not be started at all.
func (r *Runner) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from the candidate generator
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, zerr.Wrap(err, "failed to start "+argv[0])
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, zerr.Wrap(err, "failed to wait for "+argv[0])
	}
	return 0, nil
}

// Capture spawns argv[0] and returns its combined stdout and stderr as text.
// A non-zero exit is not an error here; whatever text was produced is still
// returned, matching how diagnostic listing tools are consumed.
func (r *Runner) Capture(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from the prober
	out, err := cmd.CombinedOutput()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return string(out), nil
		}
		return "", zerr.Wrap(err, "failed to run "+strings.Join(argv, " "))
	}
	return string(out), nil
}
