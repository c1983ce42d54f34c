package pdf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glimpse/internal/adapters/logger"
	"go.trai.ch/glimpse/internal/core/ports"
)

// NodeID is the unique identifier for the vector renderer Graft node.
const NodeID graft.ID = "adapter.pdf"

func init() {
	graft.Register(graft.Node[ports.VectorRenderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VectorRenderer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(log), nil
		},
	})
}
