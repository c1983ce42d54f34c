package config

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is what configuration discovery needs from the disk.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// osFS reads the real filesystem.
type osFS struct{}

func (osFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is built from the discovery walk
	return os.ReadFile(path)
}

// MountedFS exposes an fs.FS, typically an fstest.MapFS, as if it were mounted
// at an absolute directory. Paths outside the mount point do not exist.
type MountedFS struct {
	fsys  fs.FS
	mount string
}

// NewMountedFS mounts fsys at the absolute directory mount.
func NewMountedFS(mount string, fsys fs.FS) *MountedFS {
	return &MountedFS{fsys: fsys, mount: filepath.Clean(mount)}
}

// Stat returns file info for path.
func (m *MountedFS) Stat(path string) (fs.FileInfo, error) {
	name, err := m.name(path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(m.fsys, name)
}

// ReadFile reads the file at path.
func (m *MountedFS) ReadFile(path string) ([]byte, error) {
	name, err := m.name(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(m.fsys, name)
}

// name converts an absolute path below the mount point into an fs.FS name.
func (m *MountedFS) name(path string) (string, error) {
	rel, err := filepath.Rel(m.mount, filepath.Clean(path))
	if err != nil || !filepath.IsLocal(rel) {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return filepath.ToSlash(rel), nil
}
