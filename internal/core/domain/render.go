package domain

import (
	"net/url"
	"path/filepath"
	"strconv"
	"time"
)

// RenderOptions describes the requested preview size and page.
type RenderOptions struct {
	Height     int
	Width      int
	PageNumber int
}

// Normalize returns a copy with defaults applied.
// A page number below 1 becomes 1; non-positive sizes fall back to the hover defaults.
func (o RenderOptions) Normalize() RenderOptions {
	if o.PageNumber < 1 {
		o.PageNumber = DefaultPageNumber
	}
	if o.Height <= 0 {
		o.Height = DefaultPreviewHeight
	}
	if o.Width <= 0 {
		o.Width = DefaultPreviewWidth
	}
	return o
}

// FileStat is the on-disk metadata the render cache validates against.
type FileStat struct {
	Path    string
	ModTime time.Time
	// Identity is the filesystem identity number (inode) of the file, 0 where unsupported.
	Identity uint64
}

// CacheEntry maps a graphics source to its rendered artifact.
type CacheEntry struct {
	// SourcePath is the absolute path of the graphics source.
	SourcePath string
	// ArtifactName is the file name of the artifact inside the cache directory.
	ArtifactName string
	// SourceIdentity is the identity of the source when the artifact was claimed.
	SourceIdentity uint64
}

// ArtifactName formats the artifact file name for a counter value.
func ArtifactName(n uint64) string {
	return strconv.FormatUint(n, 10) + ArtifactExt
}

// PreviewKind classifies a rendered preview.
type PreviewKind uint8

const (
	// PreviewNone means no preview is available.
	PreviewNone PreviewKind = iota
	// PreviewInline carries a self-contained data URI.
	PreviewInline
	// PreviewArtifact references a file inside the render cache directory.
	PreviewArtifact
)

// String returns the name of the kind.
func (k PreviewKind) String() string {
	switch k {
	case PreviewInline:
		return "inline"
	case PreviewArtifact:
		return "artifact"
	default:
		return "none"
	}
}

// Preview is the result of rendering a graphics source.
type Preview struct {
	Kind         PreviewKind
	DataURI      string
	ArtifactPath string
}

// URI returns a URI a markdown renderer can display.
func (p Preview) URI() string {
	switch p.Kind {
	case PreviewInline:
		return p.DataURI
	case PreviewArtifact:
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(p.ArtifactPath)}
		return u.String()
	default:
		return ""
	}
}
