package domain

import "go.trai.ch/zerr"

var (
	// ErrFileNotFound is returned when the requested audio file does not exist.
	ErrFileNotFound = zerr.New("audio file not found")

	// ErrNoBackend is returned when no playback backend could be located.
	ErrNoBackend = zerr.New("no playback backend found")

	// ErrAllBackendsFailed is returned when every located backend was tried
	// and each failed.
	ErrAllBackendsFailed = zerr.New("all playback backends failed")

	// ErrBackendVanished is returned when a pipeline executable disappeared
	// between lookup and execution.
	ErrBackendVanished = zerr.New("pipeline executable no longer on PATH")
)
