// Package app implements the application layer for dacsmoke.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"dacsmoke/internal/adapters/alsa"
	"dacsmoke/internal/adapters/detector"
	"dacsmoke/internal/adapters/telemetry"
	"dacsmoke/internal/core/domain"
	"dacsmoke/internal/core/ports"
	"dacsmoke/internal/engine/backend"
	"dacsmoke/internal/ui/style"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// App represents the main application logic.
type App struct {
	files    ports.Files
	prober   ports.Prober
	platform ports.Platform
	locator  ports.Locator
	executor ports.Executor
	logger   ports.Logger

	out    io.Writer
	errOut io.Writer
}

// New creates a new App instance writing to the process's standard streams.
func New(
	files ports.Files,
	prober ports.Prober,
	platform ports.Platform,
	locator ports.Locator,
	executor ports.Executor,
	log ports.Logger,
) *App {
	return &App{
		files:    files,
		prober:   prober,
		platform: platform,
		locator:  locator,
		executor: executor,
		logger:   log,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// WithOutput redirects the primary and diagnostic streams.
// This is primarily used for testing.
func (a *App) WithOutput(out, errOut io.Writer) *App {
	a.out = out
	a.errOut = errOut
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	File        string
	Device      string
	Loops       int
	ListDevices bool
	DryRun      bool
	Trace       bool
}

// Run plays the requested file through the first backend that succeeds.
//
// The file is validated before anything else, including the --list-devices
// handling, so a missing file always wins over the listing.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.Trace {
		shutdown := telemetry.Setup(a.logger)
		defer func() {
			_ = shutdown(ctx)
		}()
	}
	tracer := otel.Tracer("dacsmoke")

	// 1. Resolve the audio file
	info, err := a.resolveFile(ctx, tracer, opts.File)
	if err != nil {
		return err
	}

	// 2. Probe the ALSA device listings
	ctx, span := tracer.Start(ctx, "probe devices")
	cards := a.prober.ListCards(ctx)
	pcms := a.prober.ListPCMs(ctx)
	span.End()

	if opts.ListDevices {
		printListing(a.out, "aplay -l", cards)
		fmt.Fprintln(a.out)
		printListing(a.out, "aplay -L", pcms)
		return nil
	}

	// 3. Setup hint when the listings show no I2S DAC on a Pi
	if a.platform.IsRaspberryPi() && !alsa.DACLikelyPresent(cards, pcms) {
		styled := detector.DetectWriter(a.errOut) == detector.ModeStyled
		fmt.Fprintln(a.errOut, style.Hint(hintHeadline, hintBody, styled))
	}

	// 4. Build the candidate list in preference order
	req := domain.Request{
		File:   info.Path,
		Device: opts.Device,
		Loops:  opts.Loops,
	}
	candidates := backend.Candidates(a.locator, req)
	if len(candidates) == 0 {
		fmt.Fprintln(a.errOut, installGuidance)
		return domain.ErrNoBackend
	}

	// 5. Try each candidate until one succeeds
	return a.tryCandidates(ctx, tracer, candidates, opts.DryRun)
}

func (a *App) resolveFile(ctx context.Context, tracer trace.Tracer, path string) (ports.FileInfo, error) {
	_, span := tracer.Start(ctx, "resolve file")
	defer span.End()

	info, err := a.files.Resolve(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return ports.FileInfo{}, err
	}

	if info.Digest != "" {
		a.logger.Info(fmt.Sprintf("resolved %s (%d bytes, xxh64 %s)", info.Path, info.Size, info.Digest))
	} else {
		a.logger.Info(fmt.Sprintf("resolved %s (%d bytes)", info.Path, info.Size))
	}
	return info, nil
}

// tryCandidates walks the candidate list in order. A simple backend that
// fails advances to the next candidate; the pipeline backend is always final
// and its exit status becomes the program's own.
func (a *App) tryCandidates(ctx context.Context, tracer trace.Tracer, candidates []domain.Invocation, dryRun bool) error {
	for _, inv := range candidates {
		switch c := inv.(type) {
		case domain.Simple:
			fmt.Fprintf(a.out, "Using backend: %s\n", c.Name())
			fmt.Fprintf(a.out, "Running: %s\n", c.String())
			if dryRun {
				return nil
			}

			status, err := a.runOne(ctx, tracer, c)
			if err != nil {
				// The executable vanished between lookup and launch.
				// Move on without noise, exactly as if it had never
				// been found.
				continue
			}
			if status == 0 {
				return nil
			}
			fmt.Fprintf(a.errOut, "Backend failed with exit code %d; trying next option...\n", status)

		case domain.Pipeline:
			fmt.Fprintf(a.out, "Using backend: %s (device=%s)\n", c.Name(), c.Device)
			if dryRun {
				fmt.Fprintln(a.out, "Would run: ffmpeg <mp3> -> wav -> aplay")
				return nil
			}

			status, err := a.runOne(ctx, tracer, c)
			if err != nil {
				return err
			}
			if status == domain.ExitNoBackend {
				return domain.ErrBackendVanished
			}
			if status != 0 {
				return &domain.ExitStatusError{Status: status}
			}
			return nil
		}
	}

	fmt.Fprintln(a.errOut, "All playback backends failed.")
	return domain.ErrAllBackendsFailed
}

func (a *App) runOne(ctx context.Context, tracer trace.Tracer, inv domain.Invocation) (int, error) {
	ctx, span := tracer.Start(ctx, "run "+inv.Name())
	defer span.End()

	status, err := a.executor.Execute(ctx, inv)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return status, err
	}
	if status != 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("exited with status %d", status))
	}
	return status, nil
}

// printListing prints one raw aplay block under a header, with a fixed
// placeholder when the tool was absent or produced nothing.
func printListing(w io.Writer, header, text string) {
	fmt.Fprintf(w, "=== %s ===\n", header)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		trimmed = "(aplay not found or no output)"
	}
	fmt.Fprintln(w, trimmed)
}
