// Package player executes playback invocations.
package player

import (
	"context"
	"os"
	"path/filepath"

	"dacsmoke/internal/core/domain"
	"dacsmoke/internal/core/ports"
	"dacsmoke/internal/engine/backend"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor. Simple invocations are a single child
// process; the pipeline invocation decodes to a temporary WAV first and then
// hands the result to aplay, looping itself.
type Executor struct {
	runner  ports.Runner
	locator ports.Locator
}

// NewExecutor creates a new Executor.
func NewExecutor(runner ports.Runner, locator ports.Locator) *Executor {
	return &Executor{
		runner:  runner,
		locator: locator,
	}
}

// Execute runs the invocation to completion and returns its exit status. A
// non-nil error means the backend could not be launched; the caller treats
// it like any other backend failure.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation) (int, error) {
	switch v := inv.(type) {
	case domain.Simple:
		return e.runner.Run(ctx, v.Argv)
	case domain.Pipeline:
		return e.runPipeline(ctx, v)
	default:
		return 0, zerr.New("unknown invocation variant")
	}
}

// Fixed decode parameters: the PCM5100 class is 16/24-bit capable, stereo
// 44100Hz keeps it simple.
const (
	decodeChannels   = "2"
	decodeSampleRate = "44100"
)

// runPipeline decodes the source into a scoped temporary directory and plays
// the intermediate file. The directory is removed on every exit path. A
// non-zero decode status is returned immediately without attempting playback.
func (e *Executor) runPipeline(ctx context.Context, p domain.Pipeline) (int, error) {
	ffmpeg, okFfmpeg := e.locator.Look(backend.ToolFfmpeg)
	aplay, okAplay := e.locator.Look(backend.ToolAplay)
	if !okFfmpeg || !okAplay {
		// The tools were present at candidate time but vanished since.
		return domain.ExitNoBackend, nil
	}

	dir, err := os.MkdirTemp("", "dacsmoke_*")
	if err != nil {
		return 0, zerr.Wrap(err, "failed to create temporary directory")
	}
	defer func() { _ = os.RemoveAll(dir) }()

	wavPath := filepath.Join(dir, "decoded.wav")
	decode := []string{
		ffmpeg,
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", p.File,
		"-ac", decodeChannels,
		"-ar", decodeSampleRate,
		wavPath,
	}

	status, err := e.runner.Run(ctx, decode)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to run decoder")
	}
	if status != 0 {
		return status, nil
	}

	play := []string{aplay}
	if p.Device != "" && p.Device != domain.DefaultDevice {
		play = append(play, "-D", p.Device)
	}
	play = append(play, wavPath)

	if p.Loops < 0 {
		// Infinite playback only ends when a play attempt fails.
		for {
			status, err := e.runner.Run(ctx, play)
			if err != nil {
				return 0, zerr.Wrap(err, "failed to run player")
			}
			if status != 0 {
				return status, nil
			}
		}
	}

	for i := 0; i < max(1, p.Loops); i++ {
		status, err := e.runner.Run(ctx, play)
		if err != nil {
			return 0, zerr.Wrap(err, "failed to run player")
		}
		if status != 0 {
			return status, nil
		}
	}
	return 0, nil
}
