package locator

import (
	"context"

	"dacsmoke/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Locator, error) {
			return New(), nil
		},
	})
}
