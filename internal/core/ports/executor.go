package ports

import (
	"context"

	"dacsmoke/internal/core/domain"
)

// Executor runs one playback invocation to completion.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and returns the exit status of the backend
	// (for the pipeline variant, of its failing stage). A non-nil error
	// means the backend could not be launched at all; the caller treats both
	// a non-zero status and a launch error as "this backend failed".
	Execute(ctx context.Context, inv domain.Invocation) (int, error)
}
