package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when the graphics source does not exist at render time.
	ErrSourceNotFound = zerr.New("graphics source not found")

	// ErrResolutionFailed is returned when a reference cannot be found on the search path.
	ErrResolutionFailed = zerr.New("failed to resolve graphics reference")

	// ErrNoProjectRoot is returned when a relative reference is resolved without a project root.
	ErrNoProjectRoot = zerr.New("no project root established")

	// ErrRenderFailed is returned when the vector renderer or the raster scaler rejects a source.
	ErrRenderFailed = zerr.New("failed to render graphics")

	// ErrUnsupported is returned when the file extension is not a recognized graphics format.
	ErrUnsupported = zerr.New("unsupported graphics format")

	// ErrCacheDirCreateFailed is returned when the ephemeral cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create render cache directory")

	// ErrArtifactWriteFailed is returned when a rendered artifact cannot be written to the cache.
	ErrArtifactWriteFailed = zerr.New("failed to write render artifact")

	// ErrPathStatFailed is returned when stating a path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrRendererUnavailable is returned when the vector renderer executable cannot be found.
	ErrRendererUnavailable = zerr.New("vector renderer executable not found")

	// ErrRendererOutputInvalid is returned when the vector renderer produced no SVG markup.
	ErrRendererOutputInvalid = zerr.New("vector renderer produced invalid output")

	// ErrImageDecodeFailed is returned when a raster image cannot be decoded.
	ErrImageDecodeFailed = zerr.New("failed to decode image")

	// ErrImageEncodeFailed is returned when a scaled raster image cannot be encoded.
	ErrImageEncodeFailed = zerr.New("failed to encode image")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file exists in the directory hierarchy.
	ErrConfigNotFound = zerr.New("could not find glimpse.yaml")

	// ErrInvalidPreviewSize is returned when the configured preview size is negative.
	ErrInvalidPreviewSize = zerr.New("preview width and height must not be negative")

	// ErrNoIncludeAtPosition is returned when no graphics inclusion surrounds a position.
	ErrNoIncludeAtPosition = zerr.New("no graphics inclusion at position")

	// ErrDocumentReadFailed is returned when a document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start file watcher")
)
