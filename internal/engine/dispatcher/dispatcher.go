// Package dispatcher routes a graphics file to the renderer for its format.
package dispatcher

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
)

var _ ports.PreviewRenderer = (*Dispatcher)(nil)

type format uint8

const (
	formatUnsupported format = iota
	formatVector
	formatRaster
)

// extensions maps lower-cased file extensions to their render path.
var extensions = map[string]format{
	".pdf":  formatVector,
	".bmp":  formatRaster,
	".jpg":  formatRaster,
	".jpeg": formatRaster,
	".gif":  formatRaster,
	".png":  formatRaster,
}

// Dispatcher implements ports.PreviewRenderer.
// Vector documents go through the render cache, raster images are scaled inline.
type Dispatcher struct {
	cache  ports.RenderCache
	scaler ports.RasterScaler
	tracer ports.Tracer
}

// New creates a new Dispatcher.
func New(cache ports.RenderCache, scaler ports.RasterScaler, tracer ports.Tracer) *Dispatcher {
	return &Dispatcher{
		cache:  cache,
		scaler: scaler,
		tracer: tracer,
	}
}

// Supported reports whether path has an extension the dispatcher can render.
func Supported(path string) bool {
	return classify(path) != formatUnsupported
}

func classify(path string) format {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Render produces a preview of resolvedPath. Unsupported formats yield a preview of
// kind domain.PreviewNone and no error.
func (d *Dispatcher) Render(ctx context.Context, resolvedPath string, opts domain.RenderOptions) (domain.Preview, error) {
	ctx, span := d.tracer.Start(ctx, "render")
	defer span.End()

	opts = opts.Normalize()
	span.SetAttribute("path", resolvedPath)
	span.SetAttribute("page", opts.PageNumber)

	switch classify(resolvedPath) {
	case formatVector:
		span.SetAttribute("kind", domain.PreviewArtifact.String())
		artifact, err := d.cache.GetOrRender(ctx, resolvedPath, opts)
		if err != nil {
			span.RecordError(err)
			return domain.Preview{}, err
		}
		return domain.Preview{Kind: domain.PreviewArtifact, ArtifactPath: artifact}, nil

	case formatRaster:
		span.SetAttribute("kind", domain.PreviewInline.String())
		uri, err := d.scaler.Scale(ctx, resolvedPath, opts)
		if err != nil {
			span.RecordError(err)
			return domain.Preview{}, err
		}
		return domain.Preview{Kind: domain.PreviewInline, DataURI: uri}, nil

	default:
		span.SetAttribute("kind", domain.PreviewNone.String())
		return domain.Preview{Kind: domain.PreviewNone}, nil
	}
}
