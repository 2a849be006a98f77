// Package types holds the error vocabulary shared by every dtskit package.
//
// Errors carry a stable ErrKind (malformed/not found/limit/external/state) so
// callers can branch on intent rather than on message text:
//
//	if errors.Is(err, types.ErrNotFound) {
//		// node or property missing
//	}
//
// This package has no dependencies beyond the standard library.
package types
