package raster

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glimpse/internal/core/ports"
)

// NodeID is the unique identifier for the raster scaler Graft node.
const NodeID graft.ID = "adapter.raster"

func init() {
	graft.Register(graft.Node[ports.RasterScaler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RasterScaler, error) {
			return NewScaler(), nil
		},
	})
}
