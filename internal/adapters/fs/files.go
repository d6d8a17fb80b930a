// Package fs implements ports.Files on the local filesystem.
package fs

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dacsmoke/internal/core/domain"
	"dacsmoke/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Files resolves user-supplied paths and fingerprints their content.
type Files struct{}

// New creates a new Files adapter.
func New() *Files {
	return &Files{}
}

// Resolve expands ~, absolutizes the path and stats it. A missing file is
// reported as domain.ErrFileNotFound; the caller turns that into the
// file-missing exit status.
func (f *Files) Resolve(path string) (ports.FileInfo, error) {
	expanded := expandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return ports.FileInfo{}, zerr.Wrap(err, "failed to resolve "+path)
	}

	st, err := os.Stat(abs)
	if err != nil {
		return ports.FileInfo{}, zerr.Wrap(domain.ErrFileNotFound, abs)
	}

	info := ports.FileInfo{
		Path: abs,
		Size: st.Size(),
	}

	// The digest is informational only; playback proceeds without it.
	if digest, err := digestFile(abs); err == nil {
		info.Digest = digest
	}

	return info, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func digestFile(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // path was resolved from user input
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
