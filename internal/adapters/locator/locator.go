// Package locator implements ports.Locator using the system search path.
package locator

import "os/exec"

// Locator resolves tool names against PATH. It is a pure query with no side
// effects; a missing tool is a normal outcome.
type Locator struct{}

// New creates a new Locator.
func New() *Locator {
	return &Locator{}
}

// Look returns the absolute path of the first matching executable on PATH.
func (l *Locator) Look(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
