package main

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glimpse/internal/app"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/glimpse/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockReferenceResolver
	renderer *mocks.MockPreviewRenderer
	cache    *mocks.MockRenderCache
	watcher  *mocks.MockWatcher
	logger   *mocks.MockLogger
}

func newProvider(t *testing.T) (*testMocks, ComponentProvider, *bool) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockReferenceResolver(ctrl),
		renderer: mocks.NewMockPreviewRenderer(ctrl),
		cache:    mocks.NewMockRenderCache(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	application := app.New(m.loader, m.resolver, m.renderer, m.cache, m.watcher, m.logger)

	cleaned := new(bool)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: m.logger}, func() { *cleaned = true }, nil
	}
	return m, provider, cleaned
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	_, provider, cleaned := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "glimpse version")
	assert.True(t, *cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	m, provider, cleaned := newProvider(t)
	m.logger.EXPECT().Error(gomock.Any())

	missing := filepath.Join(t.TempDir(), "missing.tex")
	exitCode := run(context.Background(), []string{"hover", missing}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.True(t, *cleaned)
}

// TestRun_UsageError verifies that a missing argument is a usage error.
func TestRun_UsageError(t *testing.T) {
	m, provider, _ := newProvider(t)
	m.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"preview"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_PreviewWithoutResult verifies that a missing preview is not a failure.
func TestRun_PreviewWithoutResult(t *testing.T) {
	m, provider, _ := newProvider(t)
	root := t.TempDir()

	m.loader.EXPECT().Load(root).Return(domain.Project{}, errors.Join(domain.ErrConfigNotFound, errors.New("none")))
	m.resolver.EXPECT().Resolve(domain.Project{Root: root}, "plot.pdf").Return(filepath.Join(root, "plot.pdf"), nil)
	m.resolver.EXPECT().Resolve(domain.Project{Root: root}, "gone.pdf").Return("", domain.ErrResolutionFailed)
	m.renderer.EXPECT().Render(gomock.Any(), filepath.Join(root, "plot.pdf"), gomock.Any()).
		Return(domain.Preview{Kind: domain.PreviewArtifact, ArtifactPath: "/tmp/glimpse-1/0.svg"}, nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"preview", "--root", root, "plot.pdf", "gone.pdf"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "file:///tmp/glimpse-1/0.svg\nno preview\n", stdout.String())
}

// TestRun_Signal verifies that watch returns cleanly once the context is canceled.
func TestRun_Signal(t *testing.T) {
	m, provider, cleaned := newProvider(t)

	dir := t.TempDir()
	document := filepath.Join(dir, "main.tex")
	require.NoError(t, os.WriteFile(document, []byte("no figures\n"), 0o600))

	started := make(chan struct{})
	m.loader.EXPECT().Load(dir).Return(domain.Project{}, errors.Join(domain.ErrConfigNotFound, errors.New("none")))
	m.watcher.EXPECT().Start(gomock.Any(), dir).DoAndReturn(func(context.Context, string) error {
		close(started)
		return nil
	})
	m.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(func(ports.WatchEvent) bool) {}))
	m.logger.EXPECT().Info(gomock.Any())

	ctx, cancel := context.WithCancel(context.Background())
	exitCh := make(chan int)
	go func() {
		exitCh <- run(ctx, []string{"watch", document}, new(bytes.Buffer), new(bytes.Buffer), provider)
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not start")
	}
	cancel()

	select {
	case code := <-exitCh:
		assert.Equal(t, 0, code)
		assert.True(t, *cleaned)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
