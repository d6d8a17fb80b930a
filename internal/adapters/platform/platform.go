// Package platform detects the host hardware family.
package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// modelPaths are the well-known device-tree locations that hold the board
// model string on Pi OS / Debian variants.
var modelPaths = []string{
	"/proc/device-tree/model",
	"/sys/firmware/devicetree/base/model",
}

const vendorString = "Raspberry Pi"

// Detector implements ports.Platform by reading the device-tree model files.
type Detector struct {
	root string
}

// New creates a Detector reading from the filesystem root.
func New() *Detector {
	return &Detector{root: "/"}
}

// NewWithRoot creates a Detector rooted at dir. Used for testing.
func NewWithRoot(dir string) *Detector {
	return &Detector{root: dir}
}

// IsRaspberryPi returns true only if one of the device-tree model files is
// readable and names a Raspberry Pi. Unreadable files mean false, never an
// error.
func (d *Detector) IsRaspberryPi() bool {
	for _, p := range modelPaths {
		data, err := os.ReadFile(filepath.Join(d.root, p))
		if err != nil {
			continue
		}
		if strings.Contains(string(data), vendorString) {
			return true
		}
	}
	return false
}
