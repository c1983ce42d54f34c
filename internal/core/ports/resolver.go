package ports

import "go.trai.ch/glimpse/internal/core/domain"

// ReferenceResolver locates the file a graphics reference names.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ReferenceResolver interface {
	// Resolve turns a relative or absolute reference into an absolute, existing path.
	// Relative references are tried against the project root first and then against
	// each search directory in order.
	Resolve(project domain.Project, rawRef string) (string, error)
}

// FileInspector reports the metadata the render cache validates against.
type FileInspector interface {
	// Inspect returns the modification time and identity of the file at path.
	// A missing file yields an error matching fs.ErrNotExist.
	Inspect(path string) (domain.FileStat, error)
}
