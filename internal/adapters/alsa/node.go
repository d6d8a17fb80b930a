package alsa

import (
	"context"

	"dacsmoke/internal/adapters/locator"
	"dacsmoke/internal/adapters/shell"
	"dacsmoke/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "adapter.prober"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			locator.NodeID,
			shell.NodeID,
		},
		Run: func(ctx context.Context) (ports.Prober, error) {
			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			return NewProber(loc, runner), nil
		},
	})
}
