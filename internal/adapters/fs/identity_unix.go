//go:build unix

package fs

import (
	"io/fs"
	"syscall"
)

// identity returns the inode number of the file.
func identity(info fs.FileInfo) uint64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Ino) //nolint:unconvert // Ino is uint32 on some platforms
	}
	return 0
}
