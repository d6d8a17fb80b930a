package platform

import (
	"context"

	"dacsmoke/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the platform Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[ports.Platform]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Platform, error) {
			return New(), nil
		},
	})
}
