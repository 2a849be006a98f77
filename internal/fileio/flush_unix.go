//go:build linux || freebsd

package fileio

import (
	"golang.org/x/sys/unix"
)

// fdatasync flushes file data. fullsync is ignored on Linux/FreeBSD.
func fdatasync(f fder, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
