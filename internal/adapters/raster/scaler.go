// Package raster scales raster images into inline PNG data URIs.
package raster

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // registers the BMP decoder with image.Decode
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/zerr"
)

// DataURIPrefix prefixes every URI produced by the Scaler.
const DataURIPrefix = "data:image/png;base64,"

var _ ports.RasterScaler = (*Scaler)(nil)

// Scaler implements ports.RasterScaler.
type Scaler struct{}

// NewScaler creates a new Scaler.
func NewScaler() *Scaler {
	return &Scaler{}
}

// Scale fits the image at path into opts.Width x opts.Height, never enlarging it,
// and returns it as a PNG data URI.
func (s *Scaler) Scale(ctx context.Context, path string, opts domain.RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	opts = opts.Normalize()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", errors.Join(domain.ErrImageDecodeFailed, zerr.With(err, "path", path))
	}

	fitted := imaging.Fit(img, opts.Width, opts.Height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return "", errors.Join(domain.ErrImageEncodeFailed, zerr.With(err, "path", path))
	}

	return DataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
