package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.trai.ch/glimpse/internal/app"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var hoverOpts = domain.RenderOptions{Height: 230, Width: 500, PageNumber: 1}

type fixture struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockReferenceResolver
	renderer *mocks.MockPreviewRenderer
	cache    *mocks.MockRenderCache
	watcher  *mocks.MockWatcher
	logger   *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockReferenceResolver(ctrl),
		renderer: mocks.NewMockPreviewRenderer(ctrl),
		cache:    mocks.NewMockRenderCache(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.loader, f.resolver, f.renderer, f.cache, f.watcher, f.logger)
	return f
}

func artifact(path string) domain.Preview {
	return domain.Preview{Kind: domain.PreviewArtifact, ArtifactPath: path}
}

func errConfigNotFound() error {
	return errors.Join(domain.ErrConfigNotFound, errors.New("no glimpse.yaml"))
}

// imageDestination returns the destination of the first image in markdown.
func imageDestination(t *testing.T, markdown string) string {
	t.Helper()

	doc := goldmark.New().Parser().Parse(text.NewReader([]byte(markdown)))
	var dest string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if img, ok := n.(*ast.Image); ok && entering {
			dest = string(img.Destination)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return dest
}

func TestApp_Preview(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	project := domain.Project{Root: "/paper"}

	f.resolver.EXPECT().Resolve(project, "plot.pdf").Return("/paper/plot.pdf", nil)
	f.renderer.EXPECT().Render(gomock.Any(), "/paper/plot.pdf", hoverOpts).Return(artifact("/tmp/glimpse-1/0.svg"), nil)

	preview := f.app.Preview(context.Background(), project, "plot.pdf", hoverOpts)
	require.NotNil(t, preview)
	assert.Equal(t, "file:///tmp/glimpse-1/0.svg", preview.URI())
}

func TestApp_Preview_Unresolved(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "missing.pdf").
		Return("", errors.Join(domain.ErrResolutionFailed, errors.New("not found")))

	assert.Nil(t, f.app.Preview(context.Background(), domain.Project{Root: "/paper"}, "missing.pdf", hoverOpts))
}

func TestApp_Preview_RenderFailureIsLogged(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "broken.pdf").Return("/paper/broken.pdf", nil)
	f.renderer.EXPECT().Render(gomock.Any(), "/paper/broken.pdf", hoverOpts).
		Return(domain.Preview{}, errors.Join(domain.ErrRenderFailed, errors.New("exit status 1")))
	f.logger.EXPECT().Warn(gomock.Any())

	assert.Nil(t, f.app.Preview(context.Background(), domain.Project{Root: "/paper"}, "broken.pdf", hoverOpts))
}

func TestApp_Preview_Unsupported(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "notes.txt").Return("/paper/notes.txt", nil)
	f.renderer.EXPECT().Render(gomock.Any(), "/paper/notes.txt", hoverOpts).Return(domain.Preview{Kind: domain.PreviewNone}, nil)

	assert.Nil(t, f.app.Preview(context.Background(), domain.Project{Root: "/paper"}, "notes.txt", hoverOpts))
}

func TestApp_PreviewAll(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.app.WithConcurrency(2)
	project := domain.Project{Root: "/paper"}

	f.resolver.EXPECT().Resolve(project, "a.pdf").Return("/paper/a.pdf", nil).Times(2)
	f.resolver.EXPECT().Resolve(project, "b.png").Return("/paper/b.png", nil)
	f.resolver.EXPECT().Resolve(project, "c.pdf").Return("", domain.ErrResolutionFailed)
	f.renderer.EXPECT().Render(gomock.Any(), "/paper/a.pdf", hoverOpts).Return(artifact("/tmp/glimpse-1/0.svg"), nil).Times(2)
	f.renderer.EXPECT().Render(gomock.Any(), "/paper/b.png", hoverOpts).
		Return(domain.Preview{Kind: domain.PreviewInline, DataURI: "data:image/png;base64,AAAA"}, nil)

	previews := f.app.PreviewAll(context.Background(), project, []string{"a.pdf", "b.png", "c.pdf", "a.pdf"}, hoverOpts)
	require.Len(t, previews, 4)
	require.NotNil(t, previews[0])
	assert.Equal(t, "/tmp/glimpse-1/0.svg", previews[0].ArtifactPath)
	require.NotNil(t, previews[1])
	assert.Equal(t, "data:image/png;base64,AAAA", previews[1].URI())
	assert.Nil(t, previews[2])
	require.NotNil(t, previews[3])
	assert.Equal(t, previews[0].ArtifactPath, previews[3].ArtifactPath)
}

func TestApp_LoadProject(t *testing.T) {
	t.Parallel()

	t.Run("configured", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		want := domain.Project{Root: "/paper", SearchDirs: []string{"figs"}, Width: 400}
		f.loader.EXPECT().Load("/paper/chapters").Return(want, nil)

		assert.Equal(t, want, f.app.LoadProject("/paper/chapters", "/fallback"))
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.loader.EXPECT().Load("/paper").Return(domain.Project{}, errConfigNotFound())

		assert.Equal(t, domain.Project{Root: "/paper"}, f.app.LoadProject("/paper", "/paper"))
	})

	t.Run("no fallback", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.loader.EXPECT().Load("/paper").Return(domain.Project{}, errConfigNotFound())

		assert.False(t, f.app.LoadProject("/paper", "").HasRoot())
	})

	t.Run("broken configuration warns", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.loader.EXPECT().Load("/paper").Return(domain.Project{}, errors.Join(domain.ErrConfigParseFailed, errors.New("yaml: line 2")))
		f.logger.EXPECT().Warn(gomock.Any())

		assert.Equal(t, domain.Project{Root: "/paper"}, f.app.LoadProject("/paper", "/paper"))
	})
}

func TestApp_Hover(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	dir := t.TempDir()
	document := filepath.Join(dir, "main.tex")
	text := "\\graphicspath{{figs/}}\n\\includegraphics[page=2]{plot}\n"

	f.loader.EXPECT().Load(dir).Return(domain.Project{Root: "/paper", SearchDirs: []string{"shared"}}, nil)
	f.resolver.EXPECT().
		Resolve(domain.Project{Root: "/paper", SearchDirs: []string{"shared", "figs/"}}, "plot").
		Return("/paper/figs/plot.pdf", nil)
	f.renderer.EXPECT().
		Render(gomock.Any(), "/paper/figs/plot.pdf", domain.RenderOptions{Height: 230, Width: 500, PageNumber: 2}).
		Return(artifact("/tmp/glimpse-1/0.svg"), nil)

	hover := f.app.Hover(context.Background(), document, text, domain.Position{Line: 1, Character: 26})
	require.NotNil(t, hover)
	assert.Equal(t, "![graphics](file:///tmp/glimpse-1/0.svg)", hover.Markdown)
	assert.Equal(t, hover.Preview.URI(), imageDestination(t, hover.Markdown))
	assert.Equal(t, domain.Range{
		Start: domain.Position{Line: 1, Character: 0},
		End:   domain.Position{Line: 1, Character: 30},
	}, hover.Range)
	assert.Equal(t, domain.PreviewArtifact, hover.Preview.Kind)
}

func TestApp_Hover_DocumentDirectoryIsRoot(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	dir := t.TempDir()
	text := "\\includegraphics{logo.png}"

	f.loader.EXPECT().Load(dir).Return(domain.Project{}, errConfigNotFound())
	f.resolver.EXPECT().Resolve(domain.Project{Root: dir, SearchDirs: []string{}}, "logo.png").
		Return(filepath.Join(dir, "logo.png"), nil)
	f.renderer.EXPECT().Render(gomock.Any(), filepath.Join(dir, "logo.png"), hoverOpts).
		Return(domain.Preview{Kind: domain.PreviewInline, DataURI: "data:image/png;base64,AAAA"}, nil)

	hover := f.app.Hover(context.Background(), filepath.Join(dir, "main.tex"), text, domain.Position{Line: 0, Character: 3})
	require.NotNil(t, hover)
	assert.Equal(t, "![graphics](data:image/png;base64,AAAA)", hover.Markdown)
	assert.Equal(t, "data:image/png;base64,AAAA", imageDestination(t, hover.Markdown))
}

func TestApp_Hover_NoInclude(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	hover := f.app.Hover(context.Background(), "/paper/main.tex", "Just prose.\n", domain.Position{Line: 0, Character: 2})
	assert.Nil(t, hover)
}

func TestApp_Hover_NoPreview(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	dir := t.TempDir()

	f.loader.EXPECT().Load(dir).Return(domain.Project{}, errConfigNotFound())
	f.resolver.EXPECT().Resolve(gomock.Any(), "gone.pdf").Return("", domain.ErrResolutionFailed)

	hover := f.app.Hover(context.Background(), filepath.Join(dir, "main.tex"), "\\includegraphics{gone.pdf}", domain.Position{})
	assert.Nil(t, hover)
}

func TestApp_Close(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cacheErr := errors.New("cache busy")
	f.cache.EXPECT().Close().Return(cacheErr)
	f.watcher.EXPECT().Stop().Return(nil)

	err := f.app.Close()
	require.ErrorIs(t, err, cacheErr)
}

func TestApp_Watch_UnreadableDocument(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	err := f.app.Watch(context.Background(), filepath.Join(t.TempDir(), "missing.tex"), os.Stdout)
	require.ErrorIs(t, err, domain.ErrDocumentReadFailed)
}
