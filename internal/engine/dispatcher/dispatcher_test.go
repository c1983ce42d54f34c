package dispatcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/glimpse/internal/adapters/telemetry"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports/mocks"
	"go.trai.ch/glimpse/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

var hoverOpts = domain.RenderOptions{Height: 230, Width: 500, PageNumber: 1}

func TestDispatcher_Render_Vector(t *testing.T) {
	t.Parallel()

	tests := []string{"/paper/figures/plot.pdf", "/paper/figures/PLOT.PDF", "/paper/figures/plot.Pdf"}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			cache := mocks.NewMockRenderCache(ctrl)
			scaler := mocks.NewMockRasterScaler(ctrl)

			cache.EXPECT().GetOrRender(gomock.Any(), path, hoverOpts).Return("/tmp/glimpse-1/0.svg", nil)

			d := dispatcher.New(cache, scaler, telemetry.NewNoOpTracer())
			preview, err := d.Render(context.Background(), path, hoverOpts)
			require.NoError(t, err)
			assert.Equal(t, domain.PreviewArtifact, preview.Kind)
			assert.Equal(t, "/tmp/glimpse-1/0.svg", preview.ArtifactPath)
			assert.Equal(t, "file:///tmp/glimpse-1/0.svg", preview.URI())
		})
	}
}

func TestDispatcher_Render_Raster(t *testing.T) {
	t.Parallel()

	tests := []string{"a.bmp", "a.jpg", "a.JPEG", "a.gif", "a.Png"}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			// The render cache must not be touched for raster images.
			cache := mocks.NewMockRenderCache(ctrl)
			scaler := mocks.NewMockRasterScaler(ctrl)

			scaler.EXPECT().Scale(gomock.Any(), path, hoverOpts).Return("data:image/png;base64,AAAA", nil)

			d := dispatcher.New(cache, scaler, telemetry.NewNoOpTracer())
			preview, err := d.Render(context.Background(), path, hoverOpts)
			require.NoError(t, err)
			assert.Equal(t, domain.PreviewInline, preview.Kind)
			assert.Equal(t, "data:image/png;base64,AAAA", preview.URI())
		})
	}
}

func TestDispatcher_Render_Unsupported(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"diagram.eps", "drawing.svg", "noext", "archive.pdf.gz"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			d := dispatcher.New(mocks.NewMockRenderCache(ctrl), mocks.NewMockRasterScaler(ctrl), telemetry.NewNoOpTracer())

			preview, err := d.Render(context.Background(), path, hoverOpts)
			require.NoError(t, err)
			assert.Equal(t, domain.PreviewNone, preview.Kind)
			assert.Empty(t, preview.URI())
			assert.False(t, dispatcher.Supported(path))
		})
	}
}

func TestDispatcher_Render_DefaultsPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockRenderCache(ctrl)
	cache.EXPECT().GetOrRender(gomock.Any(), "/a.pdf", hoverOpts).Return("/tmp/0.svg", nil)

	d := dispatcher.New(cache, mocks.NewMockRasterScaler(ctrl), telemetry.NewNoOpTracer())
	_, err := d.Render(context.Background(), "/a.pdf", domain.RenderOptions{Height: 230, Width: 500})
	require.NoError(t, err)
}

func TestDispatcher_Render_PropagatesFailures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockRenderCache(ctrl)
	scaler := mocks.NewMockRasterScaler(ctrl)

	cache.EXPECT().GetOrRender(gomock.Any(), "/a.pdf", hoverOpts).Return("", domain.ErrRenderFailed)
	scaler.EXPECT().Scale(gomock.Any(), "/a.png", hoverOpts).Return("", errors.Join(domain.ErrImageDecodeFailed, errors.New("bad header")))

	d := dispatcher.New(cache, scaler, telemetry.NewNoOpTracer())

	_, err := d.Render(context.Background(), "/a.pdf", hoverOpts)
	require.ErrorIs(t, err, domain.ErrRenderFailed)

	_, err = d.Render(context.Background(), "/a.png", hoverOpts)
	require.ErrorIs(t, err, domain.ErrImageDecodeFailed)
}

func TestDispatcher_Render_Span(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctrl := gomock.NewController(t)
	scaler := mocks.NewMockRasterScaler(ctrl)
	scaler.EXPECT().Scale(gomock.Any(), "/a.png", hoverOpts).Return("data:image/png;base64,", nil)

	d := dispatcher.New(mocks.NewMockRenderCache(ctrl), scaler, telemetry.NewOTelTracerWithProvider(tp, "test"))
	_, err := d.Render(context.Background(), "/a.png", hoverOpts)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "render", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("kind", "inline"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("path", "/a.png"))
}
