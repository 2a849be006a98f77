//go:build darwin

package fileio

import (
	"golang.org/x/sys/unix"
)

// fdatasync flushes file data.
//
// With fullsync, F_FULLFSYNC forces the drive to write its cache to the
// physical medium. macOS has no fdatasync, so fsync is used otherwise.
func fdatasync(f fder, fullsync bool) error {
	if fullsync {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
