//go:build !linux && !freebsd && !darwin && !windows

package fileio

import "os"

func fdatasync(f fder, _ bool) error {
	if file, ok := f.(*os.File); ok {
		return file.Sync()
	}
	return nil
}
