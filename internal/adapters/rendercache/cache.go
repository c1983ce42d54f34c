// Package rendercache memoizes rendered vector artifacts in an ephemeral directory.
package rendercache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/glimpse/internal/adapters/svg"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RenderCache = (*Cache)(nil)

// Cache implements ports.RenderCache.
//
// Validation:
// An artifact is reused only while it is at least as new as its source and the
// source still has the identity recorded when the artifact was claimed. Mtime
// catches in-place edits, identity catches files recreated with an older mtime.
type Cache struct {
	dir       string
	renderer  ports.VectorRenderer
	inspector ports.FileInspector
	tracer    ports.Tracer

	mu      sync.Mutex
	entries map[string]domain.CacheEntry // source path -> entry
	next    uint64

	closeOnce sync.Once
	closeErr  error
}

// New creates a Cache owning a fresh directory under the system temp directory.
func New(renderer ports.VectorRenderer, inspector ports.FileInspector, tracer ports.Tracer) (*Cache, error) {
	dir, err := os.MkdirTemp("", domain.CacheDirPattern)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}
	return &Cache{
		dir:       dir,
		renderer:  renderer,
		inspector: inspector,
		tracer:    tracer,
		entries:   make(map[string]domain.CacheEntry),
	}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Entry returns the entry recorded for sourcePath.
func (c *Cache) Entry(sourcePath string) (domain.CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[sourcePath]
	return entry, ok
}

// GetOrRender returns the path of a valid artifact for sourcePath, rendering it if needed.
func (c *Cache) GetOrRender(ctx context.Context, sourcePath string, opts domain.RenderOptions) (string, error) {
	ctx, span := c.tracer.Start(ctx, "cache.get_or_render")
	defer span.End()
	span.SetAttribute("source", sourcePath)

	src, err := c.inspector.Inspect(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Join(domain.ErrSourceNotFound, zerr.With(zerr.Wrap(err, "source vanished"), "path", sourcePath))
		}
		span.RecordError(err)
		return "", err
	}

	artifactPath, valid := c.claim(sourcePath, src)
	span.SetAttribute("cache.hit", valid)
	span.SetAttribute("artifact", filepath.Base(artifactPath))
	if valid {
		return artifactPath, nil
	}

	if err := c.render(ctx, sourcePath, artifactPath, opts.Normalize()); err != nil {
		span.RecordError(err)
		return "", err
	}
	return artifactPath, nil
}

// claim looks up the artifact for a source and reports whether it is still valid.
// When it is not, the entry is updated with the current identity before claim
// returns, so that concurrent requests for the same source agree on the artifact
// name while the render is in flight.
func (c *Cache) claim(sourcePath string, src domain.FileStat) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[sourcePath]
	name := entry.ArtifactName
	if !ok {
		name = domain.ArtifactName(c.next)
		c.next++
	}
	artifactPath := filepath.Join(c.dir, name)

	if ok && c.isValid(entry, artifactPath, src) {
		return artifactPath, true
	}

	c.entries[sourcePath] = domain.CacheEntry{
		SourcePath:     sourcePath,
		ArtifactName:   name,
		SourceIdentity: src.Identity,
	}
	return artifactPath, false
}

func (c *Cache) isValid(entry domain.CacheEntry, artifactPath string, src domain.FileStat) bool {
	artifact, err := c.inspector.Inspect(artifactPath)
	if err != nil {
		return false
	}
	if artifact.ModTime.Before(src.ModTime) {
		return false
	}
	return entry.SourceIdentity == src.Identity
}

// render produces the artifact for sourcePath. On failure the artifact path is
// cleared so that the next lookup fails validation and renders again.
func (c *Cache) render(ctx context.Context, sourcePath, artifactPath string, opts domain.RenderOptions) error {
	markup, err := c.renderer.RenderToSVG(ctx, sourcePath, opts)
	if err != nil {
		c.discard(artifactPath)
		return errors.Join(domain.ErrRenderFailed, zerr.With(err, "path", sourcePath))
	}

	markup = svg.SetBackground(markup, domain.BackgroundColor)

	if err := c.write(artifactPath, markup); err != nil {
		c.discard(artifactPath)
		return errors.Join(domain.ErrRenderFailed, err)
	}
	return nil
}

// write replaces the artifact through a rename so readers never see a partial file.
func (c *Cache) write(artifactPath string, markup []byte) error {
	tmp, err := os.CreateTemp(c.dir, ".pending-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(markup); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", artifactPath)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", artifactPath)
	}
	if err := os.Chmod(tmpName, domain.ArtifactPerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", artifactPath)
	}
	if err := os.Rename(tmpName, artifactPath); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", artifactPath)
	}
	return nil
}

func (c *Cache) discard(artifactPath string) {
	if err := os.Remove(artifactPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// A stale artifact that cannot be removed would be served again; forget its identity instead.
		c.mu.Lock()
		for src, entry := range c.entries {
			if filepath.Join(c.dir, entry.ArtifactName) == artifactPath {
				entry.SourceIdentity = ^uint64(0)
				c.entries[src] = entry
			}
		}
		c.mu.Unlock()
	}
}

// Close removes the cache directory and everything in it. It is safe to call more than once.
func (c *Cache) Close() error {
	c.closeOnce.Do(func() {
		if err := os.RemoveAll(c.dir); err != nil {
			c.closeErr = zerr.With(zerr.Wrap(err, "failed to remove render cache directory"), "dir", c.dir)
		}
	})
	return c.closeErr
}
