package ports

// FileInfo describes a resolved audio file.
type FileInfo struct {
	// Path is the absolute path after ~ expansion and resolution.
	Path string

	// Size is the file size in bytes.
	Size int64

	// Digest is the xxh64 digest of the file content, hex encoded. Empty if
	// the digest could not be computed.
	Digest string
}

// Files resolves user-supplied paths to playable files.
//
//go:generate mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type Files interface {
	// Resolve expands and absolutizes the given path and stats it. It
	// returns domain.ErrFileNotFound (wrapped) when the file does not exist.
	Resolve(path string) (FileInfo, error)
}
