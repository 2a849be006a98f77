package dtc

import (
	"strings"

	"github.com/joshuapare/dtskit/pkg/types"
)

const (
	BlobExt   = ".dtb"
	SourceExt = ".dts"
	NewSuffix = "_new"
)

// Paths are the files derived from one device tree blob.
type Paths struct {
	Blob      string `json:"blob"`       // original .dtb
	Source    string `json:"source"`     // decompiled .dts
	NewSource string `json:"new_source"` // patched .dts
	NewBlob   string `json:"new_blob"`   // recompiled .dtb
}

// PathsFor derives the working file names for blob, which must end in .dtb.
func PathsFor(blob string) (Paths, error) {
	base, ok := strings.CutSuffix(blob, BlobExt)
	if !ok || base == "" {
		return Paths{}, types.Malformed("dtc: %q is not a %s file", blob, BlobExt)
	}
	return Paths{
		Blob:      blob,
		Source:    base + SourceExt,
		NewSource: base + NewSuffix + SourceExt,
		NewBlob:   base + NewSuffix + BlobExt,
	}, nil
}
