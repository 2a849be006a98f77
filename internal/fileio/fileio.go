package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joshuapare/dtskit/internal/textenc"
)

// BackupSuffix is appended to a path to name its backup copy.
const BackupSuffix = ".backup"

// fder is the part of *os.File the flush helpers need.
type fder interface {
	Fd() uintptr
}

// Options tunes WriteFileAtomic.
type Options struct {
	// FullSync requests the strongest flush the platform offers
	// (F_FULLFSYNC on macOS). Ignored elsewhere.
	FullSync bool

	// NoSync skips flushing entirely. Meant for tests and scratch output.
	NoSync bool
}

// ReadText reads path and decodes it as UTF-8 text, honouring a byte-order
// mark.
func ReadText(path string) (string, error) {
	data, cleanup, err := mapFile(path)
	if err != nil {
		return "", err
	}
	text, decErr := textenc.Decode(data)
	if cerr := cleanup(); cerr != nil && decErr == nil {
		return "", fmt.Errorf("fileio: unmap %s: %w", path, cerr)
	}
	if decErr != nil {
		return "", fmt.Errorf("fileio: %s: %w", path, decErr)
	}
	return text, nil
}

// ReadBytes returns a private copy of the file at path.
func ReadBytes(path string) ([]byte, error) {
	data, cleanup, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	if err := cleanup(); err != nil {
		return nil, fmt.Errorf("fileio: unmap %s: %w", path, err)
	}
	return out, nil
}

// WriteFileAtomic replaces path with data. Readers observe either the old
// or the new content, never a partial write. perm applies when path does not
// yet exist; an existing file keeps its mode.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode, opts Options) (err error) {
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if !opts.NoSync {
		if err = fdatasync(tmp, opts.FullSync); err != nil {
			return fmt.Errorf("fileio: flush %s: %w", tmpName, err)
		}
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return err
	}
	if !opts.NoSync {
		if err = syncDir(dir); err != nil {
			return fmt.Errorf("fileio: flush directory %s: %w", dir, err)
		}
	}
	return nil
}

// Backup copies path to path+BackupSuffix, replacing any previous backup,
// and returns the backup path.
func Backup(path string, opts Options) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	data, err := ReadBytes(path)
	if err != nil {
		return "", err
	}
	dst := path + BackupSuffix
	if err := WriteFileAtomic(dst, data, info.Mode().Perm(), opts); err != nil {
		return "", err
	}
	return dst, nil
}
