package dts

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joshuapare/dtskit/internal/dtstext"
	"github.com/joshuapare/dtskit/internal/fileio"
)

// Format renders tree as .dts text.
func Format(tree *Tree) []byte {
	return dtstext.Emit(tree)
}

// FormatNode renders a single node at the given depth.
func FormatNode(n *Node, depth int) string {
	return dtstext.Stringify(n, depth)
}

// WriteFile atomically replaces path with the rendered tree.
//
// Example:
//
//	err := dts.WriteFile("board_new.dts", tree, &dts.WriteOptions{CreateBackup: true})
func WriteFile(path string, tree *Tree, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}
	fopts := fileio.Options{FullSync: opts.FullSync, NoSync: opts.NoSync}

	if opts.CreateBackup {
		if _, err := fileio.Backup(path, fopts); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return fileio.WriteFileAtomic(path, Format(tree), 0o644, fopts)
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
