package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/dtskit/pkg/ast"
)

// jsonNode represents a device tree node in JSON format.
type jsonNode struct {
	Name       string         `json:"name"`
	Path       string         `json:"path"`
	Properties []jsonProperty `json:"properties,omitempty"`
	Children   []jsonNode     `json:"children,omitempty"`
	// Counts are filled when metadata is requested.
	PropertyCount *int `json:"property_count,omitempty"`
	ChildCount    *int `json:"child_count,omitempty"`
}

// jsonProperty represents a property. Flags carry a null value.
type jsonProperty struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

func (p *Printer) buildJSON(node *ast.Node, path string, depth int, recurse bool) jsonNode {
	out := jsonNode{Name: node.Name, Path: path}

	if p.opts.PrintMetadata {
		props, children := len(node.Properties), len(node.Children)
		out.PropertyCount = &props
		out.ChildCount = &children
	}

	if p.opts.ShowProperties {
		for _, prop := range node.Properties {
			out.Properties = append(out.Properties, jsonProperty{Key: prop.Key, Value: prop.Value})
		}
	}

	if !recurse || (p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth) {
		return out
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, p.buildJSON(child, childPath(path, child.Name), depth+1, true))
	}
	return out
}

func childPath(parent, name string) string {
	if parent == ast.PathSeparator {
		return parent + name
	}
	return parent + ast.PathSeparator + name
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printNodeJSON prints a node without children in JSON format.
func (p *Printer) printNodeJSON(node *ast.Node, path string) error {
	return p.writeJSON(p.buildJSON(node, path, 0, false))
}

// printTreeJSON prints a subtree as one JSON document.
func (p *Printer) printTreeJSON(node *ast.Node, path string) error {
	return p.writeJSON(p.buildJSON(node, path, 0, true))
}

// printPropertyJSON prints a single property in JSON format.
func (p *Printer) printPropertyJSON(prop *ast.Property) error {
	return p.writeJSON(jsonProperty{Key: prop.Key, Value: prop.Value})
}
