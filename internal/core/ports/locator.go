package ports

// Locator resolves external tool names to executables on the search path.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Look returns the absolute path of the first matching executable on the
	// search path. Absence is a normal outcome, not an error: ok is false
	// when no executable was found.
	Look(name string) (path string, ok bool)
}
