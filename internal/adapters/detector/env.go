// Package detector provides environment detection for output styling.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode represents how diagnostic output should be rendered.
type OutputMode int

const (
	// ModeStyled renders diagnostics with color and icons.
	ModeStyled OutputMode = iota
	// ModePlain renders diagnostics as plain text.
	ModePlain
)

// DetectWriter returns the recommended output mode for diagnostics written
// to w. Only a terminal-backed file may receive styled output; redirected or
// in-memory writers, CI, and NO_COLOR all force plain mode.
func DetectWriter(w io.Writer) OutputMode {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if isCI || os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	return ModeStyled
}

// DetectEnvironment returns the recommended output mode for stderr.
func DetectEnvironment() OutputMode {
	return DetectWriter(os.Stderr)
}
