package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glimpse/internal/core/ports"
)

const (
	// InspectorNodeID is the unique identifier for the file inspector Graft node.
	InspectorNodeID graft.ID = "adapter.fs.inspector"
	// ResolverNodeID is the unique identifier for the reference resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[ports.FileInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileInspector, error) {
			return NewInspector(), nil
		},
	})

	graft.Register(graft.Node[ports.ReferenceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{InspectorNodeID},
		Run: func(ctx context.Context) (ports.ReferenceResolver, error) {
			inspector, err := graft.Dep[ports.FileInspector](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(inspector), nil
		},
	})
}
