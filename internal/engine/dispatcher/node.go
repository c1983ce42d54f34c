package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glimpse/internal/adapters/raster"
	"go.trai.ch/glimpse/internal/adapters/rendercache"
	"go.trai.ch/glimpse/internal/adapters/telemetry"
	"go.trai.ch/glimpse/internal/core/ports"
)

// NodeID is the unique identifier for the render dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[ports.PreviewRenderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{rendercache.NodeID, raster.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.PreviewRenderer, error) {
			cache, err := graft.Dep[*rendercache.Cache](ctx)
			if err != nil {
				return nil, err
			}
			scaler, err := graft.Dep[ports.RasterScaler](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, scaler, tracer), nil
		},
	})
}
