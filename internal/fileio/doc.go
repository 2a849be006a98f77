// Package fileio reads and replaces the files dtskit operates on.
//
// Reads go through a read-only memory mapping where the platform supports
// it and are decoded to text immediately, so the mapping never outlives the
// call. Writes are atomic: content lands in a temporary file in the target
// directory, is flushed to stable storage, and is renamed over the target.
//
// Flushing is platform specific:
//
//   - Linux/FreeBSD: fdatasync(2)
//   - macOS: F_FULLFSYNC when Options.FullSync is set, fsync(2) otherwise
//   - Windows: FlushFileBuffers
//   - Elsewhere: (*os.File).Sync
package fileio
