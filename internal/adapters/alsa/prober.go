// Package alsa probes the ALSA device listing via the aplay tool.
package alsa

import (
	"context"
	"strings"

	"dacsmoke/internal/core/ports"
)

// listTool is the device-enumeration tool.
const listTool = "aplay"

// Prober captures aplay's listing output as free-form text. The text is
// never parsed structurally.
type Prober struct {
	locator ports.Locator
	runner  ports.Runner
}

// NewProber creates a new Prober.
func NewProber(locator ports.Locator, runner ports.Runner) *Prober {
	return &Prober{
		locator: locator,
		runner:  runner,
	}
}

// ListCards returns the combined output of `aplay -l`, or an empty string if
// aplay is absent or fails to run.
func (p *Prober) ListCards(ctx context.Context) string {
	return p.capture(ctx, "-l")
}

// ListPCMs returns the combined output of `aplay -L`, or an empty string if
// aplay is absent or fails to run.
func (p *Prober) ListPCMs(ctx context.Context) string {
	return p.capture(ctx, "-L")
}

func (p *Prober) capture(ctx context.Context, flag string) string {
	exe, ok := p.locator.Look(listTool)
	if !ok {
		return ""
	}
	out, err := p.runner.Capture(ctx, []string{exe, flag})
	if err != nil {
		return ""
	}
	return out
}

// dacKeywords are common overlay and driver names for I2S DACs of the
// PCM5102/PCM5122/PCM5100 class. The list is a heuristic, maintained ad hoc.
var dacKeywords = []string{
	"hifiberry",
	"i2s",
	"snd_rpi_hifiberry_dac",
	"sndrpihifiberry",
	"rpi-dac",
	"rpidac",
	"dac",
	"pcm51",
}

// DACLikelyPresent reports whether the listing text suggests an I2S DAC is
// configured. False negatives and false positives are both acceptable; the
// result only decides whether a setup hint is printed.
func DACLikelyPresent(cards, pcms string) bool {
	hay := strings.ToLower(cards + "\n" + pcms)
	for _, k := range dacKeywords {
		if strings.Contains(hay, k) {
			return true
		}
	}
	return false
}
