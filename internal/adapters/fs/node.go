package fs

import (
	"context"

	"dacsmoke/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the files Graft node.
const NodeID graft.ID = "adapter.files"

func init() {
	graft.Register(graft.Node[ports.Files]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Files, error) {
			return New(), nil
		},
	})
}
