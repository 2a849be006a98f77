//go:build unix

package fileio

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// mapFile maps the file at path read-only and returns its contents.
func mapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("fileio: file too large to map (%d bytes)", size)
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		err := syscall.Munmap(data)
		if errors.Is(err, syscall.EINVAL) {
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
