package dtstext

import (
	"fmt"

	"github.com/joshuapare/dtskit/internal/textenc"
	"github.com/joshuapare/dtskit/pkg/ast"
)

// Codec provides .dts parsing and emission with fixed options.
type Codec struct {
	opts ParseOptions
}

// NewCodec creates a codec using DefaultParseOptions.
func NewCodec() *Codec {
	return &Codec{opts: DefaultParseOptions()}
}

// NewCodecWithOptions creates a codec with explicit parse options.
func NewCodecWithOptions(opts ParseOptions) *Codec {
	return &Codec{opts: opts}
}

// Parse decodes raw file bytes (UTF-8, or UTF-16 with BOM) and parses them.
func (c *Codec) Parse(data []byte) (*ast.Tree, error) {
	text, err := textenc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("dtstext: decode input: %w", err)
	}
	return Parse(text, c.opts)
}

// Emit renders a tree to canonical .dts text.
func (c *Codec) Emit(t *ast.Tree) []byte {
	return Emit(t)
}
