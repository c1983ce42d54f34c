package domain

const (
	// CacheDirPattern is the os.MkdirTemp pattern of the ephemeral render cache directory.
	CacheDirPattern = "glimpse-*"

	// ArtifactExt is the file extension of rendered vector artifacts.
	ArtifactExt = ".svg"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "glimpse.yaml"

	// RendererEnvVar overrides the vector renderer executable.
	RendererEnvVar = "GLIMPSE_PDFTOCAIRO"

	// DefaultRendererCommand is the vector renderer executable used when RendererEnvVar is unset.
	DefaultRendererCommand = "pdftocairo"

	// DefaultPreviewHeight is the preview height in pixels used by the hover integration.
	DefaultPreviewHeight = 230

	// DefaultPreviewWidth is the preview width in pixels used by the hover integration.
	DefaultPreviewWidth = 500

	// DefaultPageNumber is the page rendered when the caller names none.
	DefaultPageNumber = 1

	// BackgroundColor is the background forced onto rendered vector artifacts.
	BackgroundColor = "white"

	// ArtifactPerm is the permission of rendered artifacts (rw-r--r--).
	ArtifactPerm = 0o644
)
