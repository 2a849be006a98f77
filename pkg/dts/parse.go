package dts

import (
	"fmt"

	"github.com/joshuapare/dtskit/internal/dtstext"
	"github.com/joshuapare/dtskit/internal/fileio"
)

// ParseFile reads and parses a .dts file.
//
// Example:
//
//	tree, err := dts.ParseFile("/boot/dtb/board.dts", nil)
func ParseFile(path string, opts *ParseOptions) (*Tree, error) {
	text, err := fileio.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := dtstext.Parse(text, opts.internal())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tree, nil
}

// ParseString parses .dts text.
//
// Example:
//
//	tree, err := dts.ParseString("/ {\n\tmodel = \"x\";\n};\n", nil)
func ParseString(text string, opts *ParseOptions) (*Tree, error) {
	return dtstext.Parse(text, opts.internal())
}

// ParseBytes parses raw .dts content. A byte-order mark selects UTF-8 or
// UTF-16 decoding.
func ParseBytes(data []byte, opts *ParseOptions) (*Tree, error) {
	return dtstext.NewCodecWithOptions(opts.internal()).Parse(data)
}
