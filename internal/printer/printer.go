// Package printer renders parsed device trees for inspection.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/dtskit/pkg/ast"
	"github.com/joshuapare/dtskit/pkg/types"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatDTS outputs device tree source, the same layout the serializer
	// writes.
	FormatDTS Format = "dts"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, dts).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited). Text and JSON only.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowProperties includes properties in output.
	// Default: true
	ShowProperties bool

	// PrintMetadata includes property and child counts.
	// Default: false
	PrintMetadata bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		ShowProperties: true,
	}
}

// Printer handles formatted output of device tree nodes.
type Printer struct {
	opts   Options
	writer io.Writer
	root   *ast.Node
}

// New creates a Printer resolving paths against root.
//
// Example:
//
//	tree, _ := dts.ParseFile("board.dts")
//	p := printer.New(tree.Root, os.Stdout, printer.DefaultOptions())
//	p.PrintTree("/cam_i2cmux")
func New(root *ast.Node, w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{
		root:   root,
		writer: w,
		opts:   opts,
	}
}

func (p *Printer) find(path string) (*ast.Node, error) {
	node, err := p.root.Lookup(ast.SplitPath(path)...)
	if err != nil {
		return nil, fmt.Errorf("find node %q: %w", path, err)
	}
	return node, nil
}

// PrintNode prints one node with its properties but not its children.
func (p *Printer) PrintNode(path string) error {
	node, err := p.find(path)
	if err != nil {
		return err
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printNodeJSON(node, canonical(path))
	case FormatDTS:
		shallow := &ast.Node{Name: node.Name, Properties: node.Properties}
		return p.printDTS(shallow)
	default:
		return p.printNodeText(node, 0)
	}
}

// PrintProperty prints a single property of the node at path.
func (p *Printer) PrintProperty(path, key string) error {
	node, err := p.find(path)
	if err != nil {
		return err
	}
	prop := node.FindProperty(key)
	if prop == nil {
		return types.NotFound("property %q not found in %s", key, canonical(path))
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printPropertyJSON(prop)
	case FormatDTS:
		_, err := fmt.Fprintln(p.writer, propertyLine(prop))
		return err
	default:
		return p.printPropertyText(prop, 0)
	}
}

// PrintTree prints the subtree rooted at path.
//
// Example:
//
//	opts := printer.DefaultOptions()
//	opts.MaxDepth = 2
//	printer.New(tree.Root, os.Stdout, opts).PrintTree("/")
func (p *Printer) PrintTree(path string) error {
	node, err := p.find(path)
	if err != nil {
		return err
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(node, canonical(path))
	case FormatDTS:
		return p.printDTS(node)
	default:
		return p.printTreeText(node, 0)
	}
}

// canonical normalises a user path: "" and "//" become "/".
func canonical(path string) string {
	return ast.JoinPath(ast.SplitPath(path))
}
