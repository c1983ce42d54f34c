// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/glimpse/internal/core/domain"
)

// VectorRenderer renders one page of a multi-page document to SVG markup.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type VectorRenderer interface {
	// RenderToSVG renders opts.PageNumber of the document at path, fitted into
	// opts.Width x opts.Height, and returns the raw markup.
	RenderToSVG(ctx context.Context, path string, opts domain.RenderOptions) ([]byte, error)
}

// RasterScaler scales a raster image into a self-contained inline payload.
type RasterScaler interface {
	// Scale fits the image at path into opts.Width x opts.Height and returns a data URI.
	Scale(ctx context.Context, path string, opts domain.RenderOptions) (string, error)
}

// RenderCache memoizes rendered vector artifacts on disk.
type RenderCache interface {
	// GetOrRender returns the path of a valid artifact for sourcePath, rendering it
	// when no valid artifact exists.
	GetOrRender(ctx context.Context, sourcePath string, opts domain.RenderOptions) (string, error)
	// Close removes the cache directory and everything in it.
	Close() error
}

// PreviewRenderer classifies a resolved graphics file and renders a preview for it.
type PreviewRenderer interface {
	// Render returns an inline or artifact preview, or a preview of kind
	// domain.PreviewNone when the file type is not supported.
	Render(ctx context.Context, resolvedPath string, opts domain.RenderOptions) (domain.Preview, error)
}
