package domain

import "strconv"

// Process exit statuses forming the program's exit contract.
const (
	ExitSuccess      = 0   // played, dry-run, or list-devices
	ExitAllFailed    = 1   // every located backend was tried and failed
	ExitFileNotFound = 2   // the requested audio file does not exist
	ExitNoBackend    = 127 // no backend tool found, or pipeline tools vanished
)

// ExitStatusError carries a child process's exit status out of the pipeline
// backend so it can become the program's own exit status verbatim.
type ExitStatusError struct {
	Status int
}

func (e *ExitStatusError) Error() string {
	return "pipeline exited with status " + strconv.Itoa(e.Status)
}
