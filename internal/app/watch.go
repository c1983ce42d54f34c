package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/glimpse/internal/adapters/latex"
	"go.trai.ch/glimpse/internal/adapters/watcher"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/zerr"
)

// watchedReference is a graphics inclusion and the file it last resolved to.
type watchedReference struct {
	ref      domain.Reference
	resolved string
}

// watchSession holds the state of one Watch call. It is only touched by the
// goroutine running Watch.
type watchSession struct {
	app          *App
	documentPath string
	project      domain.Project
	refs         []watchedReference
	out          io.Writer
}

// Watch renders every graphics inclusion of the document and keeps the
// previews fresh until ctx is cancelled. Each rendered preview is reported to
// out as one line.
func (a *App) Watch(ctx context.Context, documentPath string, out io.Writer) error {
	documentPath, err := filepath.Abs(documentPath)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve document path")
	}

	session := &watchSession{app: a, documentPath: documentPath, out: out}
	if err := session.reload(); err != nil {
		return err
	}
	session.renderAll(ctx)

	if err := a.watcher.Start(ctx, session.project.Root); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s", session.project.Root))

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			session.refresh(ctx, paths)
		}
	}
}

// reload reads the document and rebuilds the project and reference list.
func (s *watchSession) reload() error {
	content, err := os.ReadFile(s.documentPath)
	if err != nil {
		return errors.Join(domain.ErrDocumentReadFailed, zerr.With(err, "path", s.documentPath))
	}
	text := string(content)

	s.project = s.app.documentProject(s.documentPath, text)
	refs := latex.FindAll(text)
	s.refs = make([]watchedReference, len(refs))
	for i, ref := range refs {
		s.refs[i] = watchedReference{ref: ref}
	}
	return nil
}

func (s *watchSession) renderAll(ctx context.Context) {
	for i := range s.refs {
		s.render(ctx, &s.refs[i], false)
	}
}

// refresh re-renders what a batch of changed paths affects. A changed document
// is re-read entirely. References that never resolved are retried on every
// batch since the batch may have created their file.
func (s *watchSession) refresh(ctx context.Context, paths []string) {
	changed := make(map[string]bool, len(paths))
	for _, path := range paths {
		changed[filepath.Clean(path)] = true
	}

	if changed[s.documentPath] {
		if err := s.reload(); err != nil {
			s.app.logger.Warn(fmt.Sprintf("cannot reload document: %v", err))
			return
		}
		s.renderAll(ctx)
		return
	}

	for i := range s.refs {
		entry := &s.refs[i]
		switch {
		case entry.resolved == "":
			s.render(ctx, entry, true)
		case changed[entry.resolved]:
			s.render(ctx, entry, false)
		}
	}
}

// render reports the preview of one reference. When quietUnresolved is set a
// reference that still does not resolve produces no output.
func (s *watchSession) render(ctx context.Context, entry *watchedReference, quietUnresolved bool) {
	resolved, err := s.app.resolver.Resolve(s.project, entry.ref.Path)
	if err != nil {
		entry.resolved = ""
		if !quietUnresolved {
			fmt.Fprintf(s.out, "%s: no preview\n", entry.ref.Path)
		}
		return
	}
	entry.resolved = resolved

	preview := s.app.renderResolved(ctx, entry.ref.Path, resolved, s.project.RenderOptions(entry.ref.Page))
	if preview == nil {
		fmt.Fprintf(s.out, "%s: no preview\n", entry.ref.Path)
		return
	}
	fmt.Fprintf(s.out, "%s -> %s\n", entry.ref.Path, preview.URI())
}
