// Package build holds build-time information.
package build

// Build metadata. The values default to development values and can be overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
