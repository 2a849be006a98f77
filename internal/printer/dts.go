package printer

import (
	"io"

	"github.com/joshuapare/dtskit/internal/dtstext"
	"github.com/joshuapare/dtskit/pkg/ast"
)

// printDTS writes node as source text. The root gets the version header.
func (p *Printer) printDTS(node *ast.Node) error {
	_, err := io.WriteString(p.writer, dtstext.Stringify(node, 0))
	return err
}

// propertyLine renders prop the way it appears inside a node.
func propertyLine(prop *ast.Property) string {
	if !prop.HasValue() {
		return prop.Key + dtstext.Terminator
	}
	return prop.Key + dtstext.PropertySeparator + *prop.Value + dtstext.Terminator
}
