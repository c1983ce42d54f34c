//go:build !unix

package fs

import "io/fs"

// identity is always 0 where the platform exposes no inode through FileInfo.
// The render cache then relies on modification times alone.
func identity(_ fs.FileInfo) uint64 {
	return 0
}
