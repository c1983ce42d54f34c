// Package fs implements filesystem adapters for locating graphics sources.
package fs

import (
	"errors"
	"path/filepath"

	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReferenceResolver = (*Resolver)(nil)

// Resolver implements the ReferenceResolver interface with existence checks
// against the project root and its search directories.
type Resolver struct {
	inspector ports.FileInspector
}

// NewResolver creates a new Resolver.
func NewResolver(inspector ports.FileInspector) *Resolver {
	return &Resolver{inspector: inspector}
}

// Resolve turns rawRef into an absolute path of an existing file.
func (r *Resolver) Resolve(project domain.Project, rawRef string) (string, error) {
	if rawRef == "" {
		return "", zerr.With(domain.ErrResolutionFailed, "reference", rawRef)
	}

	// Absolute references bypass the search path entirely.
	if filepath.IsAbs(rawRef) {
		if r.exists(rawRef) {
			return filepath.Clean(rawRef), nil
		}
		return "", notFound(rawRef)
	}

	if !project.HasRoot() {
		return "", errors.Join(domain.ErrResolutionFailed, zerr.With(domain.ErrNoProjectRoot, "reference", rawRef))
	}

	for _, candidate := range candidates(project, rawRef) {
		if r.exists(candidate) {
			return candidate, nil
		}
	}

	return "", notFound(rawRef)
}

// candidates lists the paths tried for a relative reference, in order.
func candidates(project domain.Project, rawRef string) []string {
	paths := make([]string, 0, len(project.SearchDirs)+1)
	paths = append(paths, absJoin(project.Root, rawRef))
	for _, dir := range project.SearchDirs {
		paths = append(paths, absJoin(project.Root, dir, rawRef))
	}
	return paths
}

// absJoin joins elem like path.resolve does: an absolute element restarts the path.
func absJoin(root string, elem ...string) string {
	result := root
	for _, e := range elem {
		if filepath.IsAbs(e) {
			result = e
			continue
		}
		result = filepath.Join(result, e)
	}
	if abs, err := filepath.Abs(result); err == nil {
		return abs
	}
	return filepath.Clean(result)
}

func (r *Resolver) exists(path string) bool {
	_, err := r.inspector.Inspect(path)
	return err == nil
}

func notFound(rawRef string) error {
	return zerr.With(domain.ErrResolutionFailed, "reference", rawRef)
}
