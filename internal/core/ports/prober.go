package ports

import "context"

// Prober captures the raw text output of the system's device-enumeration
// tool. The text is never parsed structurally; it feeds the DAC-presence
// heuristic and the --list-devices display.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// ListCards returns the sound-card listing (aplay -l), or an empty
	// string if the tool is absent or fails.
	ListCards(ctx context.Context) string

	// ListPCMs returns the PCM device-name listing (aplay -L), or an empty
	// string if the tool is absent or fails.
	ListPCMs(ctx context.Context) string
}

// Platform reports best-effort facts about the host hardware.
type Platform interface {
	// IsRaspberryPi returns true only on strong evidence that the host is a
	// Raspberry Pi. It never fails; unreadable system files mean false.
	IsRaspberryPi() bool
}
