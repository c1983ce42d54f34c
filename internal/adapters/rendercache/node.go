package rendercache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glimpse/internal/adapters/fs"
	"go.trai.ch/glimpse/internal/adapters/pdf"
	"go.trai.ch/glimpse/internal/adapters/telemetry"
	"go.trai.ch/glimpse/internal/core/ports"
)

// NodeID is the unique identifier for the render cache Graft node.
const NodeID graft.ID = "adapter.rendercache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pdf.NodeID, fs.InspectorNodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			renderer, err := graft.Dep[ports.VectorRenderer](ctx)
			if err != nil {
				return nil, err
			}
			inspector, err := graft.Dep[ports.FileInspector](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(renderer, inspector, tracer)
		},
	})
}
