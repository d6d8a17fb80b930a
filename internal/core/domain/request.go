// Package domain holds the core value types for dacsmoke.
package domain

// Request describes a single playback request. It is created once from user
// input and read-only thereafter.
type Request struct {
	// File is the resolved absolute path of the audio file.
	File string

	// Device is the backend-specific output device selector, passed through
	// verbatim to whichever backend supports it. Empty means "not requested".
	Device string

	// Loops is the playback repeat count: 1 plays once, N>1 plays N times,
	// negative loops forever.
	Loops int
}

// DefaultDevice is the literal marker meaning "system default output".
const DefaultDevice = "default"
