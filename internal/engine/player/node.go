package player

import (
	"context"

	"dacsmoke/internal/adapters/locator"
	"dacsmoke/internal/adapters/shell"
	"dacsmoke/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			locator.NodeID,
		},
		Run: func(ctx context.Context) (ports.Executor, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}

			return NewExecutor(runner, loc), nil
		},
	})
}
