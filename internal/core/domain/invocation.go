package domain

import (
	"path/filepath"
	"strings"
)

// Invocation is one candidate way to play the file. It is a sealed sum type:
// the Executor dispatches on the concrete variant.
type Invocation interface {
	// Name returns the backend's display name.
	Name() string

	isInvocation()
}

// Simple is a single-process invocation: an executable plus its argument
// list. Immutable once constructed. Argv[0] is the resolved executable path.
type Simple struct {
	Backend string
	Argv    []string
}

func (Simple) isInvocation() {}

// Name returns the backend's display name.
func (s Simple) Name() string { return s.Backend }

// String renders the shell-quoted command line for display.
func (s Simple) String() string {
	parts := make([]string, 0, len(s.Argv))
	for _, a := range s.Argv {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

// Pipeline is the two-stage decode-then-play invocation. Its execution is a
// small control flow of its own rather than a single process launch, so it
// carries the raw request fields instead of a flat argument list.
type Pipeline struct {
	// File is the absolute path of the source audio file.
	File string

	// Device is the target device selector; DefaultDevice means the system
	// default output.
	Device string

	// Loops is the raw loop count, interpreted by the pipeline itself.
	Loops int
}

func (Pipeline) isInvocation() {}

// Name returns the backend's display name.
func (Pipeline) Name() string { return "ffmpeg + aplay" }

// BackendName returns the display name for an executable path, the basename
// of the resolved binary.
func BackendName(exe string) string {
	return filepath.Base(exe)
}

// quote renders a single argument safe for copy-pasting into a POSIX shell.
// Plain arguments pass through unchanged; anything else is single-quoted.
func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'`$\\!*?[]{}()<>|&;~#") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
