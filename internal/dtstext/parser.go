package dtstext

import (
	"github.com/joshuapare/dtskit/internal/textenc"
	"github.com/joshuapare/dtskit/pkg/ast"
	"github.com/joshuapare/dtskit/pkg/types"
)

// ParseOptions controls parsing.
type ParseOptions struct {
	// Limits bounds the resulting tree. Zero-valued fields are not enforced.
	Limits ast.Limits
}

// DefaultParseOptions returns options using ast.DefaultLimits.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Limits: ast.DefaultLimits()}
}

// Parse builds a tree from .dts text that is already resident in memory.
func Parse(text string, opts ParseOptions) (*ast.Tree, error) {
	return ParseLines(textenc.SplitLines(text), opts)
}

// ParseLines builds a tree from pre-split lines. Parsing starts at the first
// open event; that node becomes the root. Nodes opened after the root's
// close are kept as overlays.
func ParseLines(lines []string, opts ParseOptions) (*ast.Tree, error) {
	events, err := IndexBrackets(lines)
	if err != nil {
		return nil, err
	}

	p := &parser{lines: lines, events: events, limits: opts.Limits}

	closeAt, root, err := p.parseNode(0, nil)
	if err != nil {
		return nil, err
	}
	tree := &ast.Tree{Root: root}

	for cursor := closeAt + 1; cursor < len(events); cursor = closeAt + 1 {
		var overlay *ast.Node
		closeAt, overlay, err = p.parseNode(cursor, nil)
		if err != nil {
			return nil, err
		}
		tree.Overlays = append(tree.Overlays, overlay)
	}
	return tree, nil
}

type parser struct {
	lines  []string
	events []Bracket
	limits ast.Limits
}

// parseNode parses the node opened by events[cursor]. It returns the index
// of the node's own close event together with the completed node.
// parents holds the names of the enclosing nodes, for error messages.
func (p *parser) parseNode(cursor int, parents []string) (int, *ast.Node, error) {
	open := p.events[cursor]
	if open.Kind != BracketOpen {
		return 0, nil, types.Malformed("dtstext: line %d: expected a node header", open.Line+1)
	}

	name, err := nodeName(p.lines[open.Line], open.Line)
	if err != nil {
		return 0, nil, err
	}
	path := append(parents[:len(parents):len(parents)], name)
	if err := p.limits.CheckDepth(len(path)); err != nil {
		return 0, nil, p.limitError(err, path)
	}

	node := ast.NewNode(name)
	for idx := open.Line + 1; ; idx++ {
		if idx >= len(p.lines) || cursor+1 >= len(p.events) {
			return 0, nil, types.Malformed("dtstext: line %d: node %q is never closed", open.Line+1, name)
		}

		next := p.events[cursor+1]
		if next.Line == idx {
			if next.Kind == BracketClose {
				if err := p.limits.CheckNode(node); err != nil {
					return 0, nil, p.limitError(err, path)
				}
				return cursor + 1, node, nil
			}

			closeAt, child, err := p.parseNode(cursor+1, path)
			if err != nil {
				return 0, nil, err
			}
			node.Children = append(node.Children, child)
			cursor = closeAt
			idx = p.events[cursor].Line
			continue
		}

		prop, ok, err := parseProperty(p.lines[idx], idx)
		if err != nil {
			return 0, nil, err
		}
		if ok {
			node.Properties = append(node.Properties, prop)
		}
	}
}

func (p *parser) limitError(err error, path []string) error {
	if ve, ok := err.(*ast.ValidationError); ok {
		ve.NodePath = displayPath(path)
	}
	return ast.LimitViolation(err)
}

// displayPath renders a parse stack for messages; the root's own "/" name
// is not repeated.
func displayPath(path []string) string {
	if len(path) > 0 && path[0] == ast.RootName {
		path = path[1:]
	}
	return ast.JoinPath(path)
}
