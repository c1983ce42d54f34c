// Package app implements the application layer for glimpse.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/glimpse/internal/adapters/latex"
	"go.trai.ch/glimpse/internal/adapters/watcher"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	resolver       ports.ReferenceResolver
	renderer       ports.PreviewRenderer
	cache          ports.RenderCache
	watcher        ports.Watcher
	logger         ports.Logger
	debounceWindow time.Duration
	concurrency    int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.ReferenceResolver,
	renderer ports.PreviewRenderer,
	cache ports.RenderCache,
	fileWatcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader:   loader,
		resolver:       resolver,
		renderer:       renderer,
		cache:          cache,
		watcher:        fileWatcher,
		logger:         log,
		debounceWindow: watcher.DefaultDebounceWindow,
		concurrency:    runtime.NumCPU(),
	}
}

// WithDebounceWindow sets how long Watch waits for file events to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// WithConcurrency limits how many previews PreviewAll renders at once.
func (a *App) WithConcurrency(n int) *App {
	if n > 0 {
		a.concurrency = n
	}
	return a
}

// LoadProject returns the project configured for dir.
// Without a usable configuration the project is rooted at fallbackRoot,
// which may be empty to leave relative references unresolvable.
func (a *App) LoadProject(dir, fallbackRoot string) domain.Project {
	project, err := a.configLoader.Load(dir)
	if err == nil {
		return project
	}
	if !errors.Is(err, domain.ErrConfigNotFound) {
		a.logger.Warn(fmt.Sprintf("ignoring configuration: %v", err))
	}
	return domain.Project{Root: fallbackRoot}
}

// Preview resolves rawRef within project and renders it.
// It returns nil when the reference cannot be resolved, the file type is not
// supported, or the render fails. Render failures are logged as warnings.
func (a *App) Preview(ctx context.Context, project domain.Project, rawRef string, opts domain.RenderOptions) *domain.Preview {
	path, err := a.resolver.Resolve(project, rawRef)
	if err != nil {
		return nil
	}
	return a.renderResolved(ctx, rawRef, path, opts)
}

func (a *App) renderResolved(ctx context.Context, rawRef, path string, opts domain.RenderOptions) *domain.Preview {
	preview, err := a.renderer.Render(ctx, path, opts)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("no preview for %s: %v", rawRef, err))
		return nil
	}
	if preview.Kind == domain.PreviewNone {
		return nil
	}
	return &preview
}

// PreviewAll renders every reference concurrently.
// The result at index i belongs to refs[i].
func (a *App) PreviewAll(ctx context.Context, project domain.Project, refs []string, opts domain.RenderOptions) []*domain.Preview {
	previews := make([]*domain.Preview, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			previews[i] = a.Preview(ctx, project, ref, opts)
			return nil
		})
	}
	_ = g.Wait()

	return previews
}

// Hover renders the graphics inclusion of text under pos.
// It returns nil when there is no inclusion at pos or no preview for it.
func (a *App) Hover(ctx context.Context, documentPath, text string, pos domain.Position) *domain.Hover {
	ref, err := latex.FindInclude(text, pos)
	if err != nil {
		return nil
	}

	project := a.documentProject(documentPath, text)
	preview := a.Preview(ctx, project, ref.Path, project.RenderOptions(ref.Page))
	if preview == nil {
		return nil
	}

	return &domain.Hover{
		Markdown: "![graphics](" + preview.URI() + ")",
		Range:    ref.Range,
		Preview:  *preview,
	}
}

// Close removes every rendered artifact and stops watching files.
func (a *App) Close() error {
	return errors.Join(a.cache.Close(), a.watcher.Stop())
}

// documentProject returns the project a document belongs to. The document's
// directory is the root unless a configuration says otherwise, and the
// document's own \graphicspath entries follow the configured search directories.
func (a *App) documentProject(documentPath, text string) domain.Project {
	dir := filepath.Dir(documentPath)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	project := a.LoadProject(dir, dir)
	return project.WithSearchDirs(latex.GraphicsPaths(text)...)
}
