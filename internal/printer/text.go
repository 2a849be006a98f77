package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/dtskit/pkg/ast"
)

// printNodeText prints a node header and its properties.
func (p *Printer) printNodeText(node *ast.Node, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	if _, err := fmt.Fprintf(p.writer, "%s[%s]\n", indent, node.Name); err != nil {
		return err
	}

	if p.opts.PrintMetadata {
		fmt.Fprintf(p.writer, "%s  Properties: %d, Children: %d\n", indent, len(node.Properties), len(node.Children))
	}

	if p.opts.ShowProperties {
		for _, prop := range node.Properties {
			if err := p.printPropertyText(prop, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// printPropertyText prints key = value, or the bare key for a flag.
func (p *Printer) printPropertyText(prop *ast.Property, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	if !prop.HasValue() {
		_, err := fmt.Fprintf(p.writer, "%s%s\n", indent, prop.Key)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "%s%s = %s\n", indent, prop.Key, *prop.Value)
	return err
}

// printTreeText recursively prints a subtree in text format.
func (p *Printer) printTreeText(node *ast.Node, depth int) error {
	if err := p.printNodeText(node, depth); err != nil {
		return err
	}

	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return nil
	}
	for _, child := range node.Children {
		// Blank line between nodes for readability
		fmt.Fprintln(p.writer)

		if err := p.printTreeText(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
