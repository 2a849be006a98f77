//go:build windows

package fileio

import (
	"golang.org/x/sys/windows"
)

// fdatasync flushes file data and metadata with FlushFileBuffers.
func fdatasync(f fder, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
