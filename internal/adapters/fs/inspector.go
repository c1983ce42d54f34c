package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileInspector = (*Inspector)(nil)

// Inspector implements ports.FileInspector using os.Stat.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect returns the modification time and identity of the file at path.
func (i *Inspector) Inspect(path string) (domain.FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.FileStat{}, err
		}
		return domain.FileStat{}, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	return domain.FileStat{
		Path:     path,
		ModTime:  info.ModTime(),
		Identity: identity(info),
	}, nil
}
