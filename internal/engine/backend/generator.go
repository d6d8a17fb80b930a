// Package backend builds the ordered list of playback candidates.
package backend

import (
	"strconv"

	"dacsmoke/internal/core/domain"
	"dacsmoke/internal/core/ports"
)

// Executable names of the supported backends.
const (
	ToolMpg123 = "mpg123"
	ToolFfplay = "ffplay"
	ToolFfmpeg = "ffmpeg"
	ToolAplay  = "aplay"
)

// Candidates returns one invocation per backend whose executables the
// locator finds, in fixed preference order: mpg123, ffplay, ffmpeg+aplay.
// The result is deterministic for a given locator state and request; it is
// empty when none of the tools is installed.
func Candidates(loc ports.Locator, req domain.Request) []domain.Invocation {
	var out []domain.Invocation

	if exe, ok := loc.Look(ToolMpg123); ok {
		out = append(out, mpg123(exe, req))
	}

	if exe, ok := loc.Look(ToolFfplay); ok {
		out = append(out, ffplay(exe, req))
	}

	_, haveFfmpeg := loc.Look(ToolFfmpeg)
	_, haveAplay := loc.Look(ToolAplay)
	if haveFfmpeg && haveAplay {
		device := req.Device
		if device == "" {
			device = domain.DefaultDevice
		}
		out = append(out, domain.Pipeline{
			File:   req.File,
			Device: device,
			Loops:  req.Loops,
		})
	}

	return out
}

// mpg123 has the richest control: -a selects the ALSA device and --loop
// takes the total play count, -1 meaning infinite.
func mpg123(exe string, req domain.Request) domain.Simple {
	argv := []string{exe}
	if req.Device != "" {
		argv = append(argv, "-a", req.Device)
	}
	switch {
	case req.Loops < 0:
		argv = append(argv, "--loop", "-1")
	case req.Loops > 1:
		argv = append(argv, "--loop", strconv.Itoa(req.Loops))
	}
	argv = append(argv, req.File)

	return domain.Simple{Backend: domain.BackendName(exe), Argv: argv}
}

// ffplay cannot select an output device portably, so it is built even when a
// device was requested; it only honors the system default output. Its -loop
// flag counts additional repeats beyond the first play (0 meaning forever),
// hence the off-by-one relative to mpg123.
func ffplay(exe string, req domain.Request) domain.Simple {
	argv := []string{exe, "-nodisp", "-autoexit", "-loglevel", "error"}
	switch {
	case req.Loops < 0:
		argv = append(argv, "-loop", "0")
	case req.Loops > 1:
		argv = append(argv, "-loop", strconv.Itoa(req.Loops-1))
	}
	argv = append(argv, req.File)

	return domain.Simple{Backend: domain.BackendName(exe), Argv: argv}
}
