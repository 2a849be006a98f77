package dtstext

import (
	"bytes"
	"strings"

	"github.com/joshuapare/dtskit/pkg/ast"
)

// Stringify renders n at the given depth. A depth-0 root node is preceded
// by the version header and a blank line.
func Stringify(n *ast.Node, depth int) string {
	var buf bytes.Buffer
	if depth == 0 && n.IsRoot() {
		buf.WriteString(VersionHeader + Newline + Newline)
	}
	writeNode(&buf, n, depth)
	return buf.String()
}

// Emit renders a whole tree: the root, then each overlay after one blank line.
func Emit(t *ast.Tree) []byte {
	var buf bytes.Buffer
	if t.Root != nil {
		buf.WriteString(Stringify(t.Root, 0))
	}
	for _, o := range t.Overlays {
		buf.WriteString(Newline)
		writeNode(&buf, o, 0)
	}
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *ast.Node, depth int) {
	indent := strings.Repeat(Indent, depth)

	buf.WriteString(indent)
	buf.WriteString(n.Name)
	buf.WriteString(HeaderSuffix + Newline)

	for _, p := range n.Properties {
		buf.WriteString(indent + Indent)
		buf.WriteString(p.Key)
		if p.Value != nil {
			buf.WriteString(PropertySeparator)
			buf.WriteString(*p.Value)
		}
		buf.WriteString(Terminator + Newline)
	}

	if len(n.Children) > 0 {
		buf.WriteString(Newline)
	}

	for i, c := range n.Children {
		writeNode(buf, c, depth+1)
		if i < len(n.Children)-1 {
			buf.WriteString(Newline)
		}
	}

	buf.WriteString(indent)
	buf.WriteString(NodeClose + Newline)
}
