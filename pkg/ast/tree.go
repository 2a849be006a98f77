package ast

import (
	"strings"

	"github.com/joshuapare/dtskit/pkg/types"
)

// RootName is the header text of the document root node.
const RootName = "/"

// PathSeparator joins node names when a location is reported as a path.
const PathSeparator = "/"

// Tree is a parsed device tree source document.
type Tree struct {
	Root *Node

	// Overlays are top-level nodes that follow the root's close
	// (e.g. "&label { ... };" references), in source order.
	Overlays []*Node
}

// Node is a named block. Children are owned exclusively by their parent.
type Node struct {
	Name       string
	Properties []*Property
	Children   []*Node
}

// Property is a key with an optional raw value.
// A nil Value means the property was written as "key;".
type Property struct {
	Key   string
	Value *string // verbatim text between " = " and ";"
}

// NewTree creates a tree with an empty root node.
func NewTree() *Tree {
	return &Tree{Root: NewNode(RootName)}
}

// NewNode creates an empty node.
func NewNode(name string) *Node {
	return &Node{
		Name:       name,
		Properties: make([]*Property, 0),
		Children:   make([]*Node, 0),
	}
}

// IsRoot reports whether n carries the root header.
func (n *Node) IsRoot() bool {
	return n.Name == RootName
}

// FindProperty returns the first property of n (not of its descendants)
// whose key equals key exactly. Returns nil if absent.
func (n *Node) FindProperty(key string) *Property {
	for _, p := range n.Properties {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// FindChild returns the first direct child whose name equals name exactly.
// Returns nil if absent.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Lookup chains FindChild over path. A missing step yields an
// ErrKindNotFound error naming the path up to and including that step.
func (n *Node) Lookup(path ...string) (*Node, error) {
	current := n
	for i, name := range path {
		next := current.FindChild(name)
		if next == nil {
			return nil, types.NotFound("node %s not found", JoinPath(path[:i+1]))
		}
		current = next
	}
	return current, nil
}

// AddChild appends a new empty child node and returns it.
func (n *Node) AddChild(name string) *Node {
	child := NewNode(name)
	n.Children = append(n.Children, child)
	return child
}

// AddProperty appends a property without checking for an existing key.
func (n *Node) AddProperty(key string, value *string) *Property {
	p := &Property{Key: key, Value: value}
	n.Properties = append(n.Properties, p)
	return p
}

// SetProperty updates the first property named key in place, or appends
// one if none exists. Position of an existing property is preserved.
func (n *Node) SetProperty(key string, value *string) *Property {
	if p := n.FindProperty(key); p != nil {
		p.Value = value
		return p
	}
	return n.AddProperty(key, value)
}

// RemoveProperty removes the first property named key.
func (n *Node) RemoveProperty(key string) bool {
	for i, p := range n.Properties {
		if p.Key == key {
			n.Properties = append(n.Properties[:i], n.Properties[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveChild removes the first child named name along with its subtree.
func (n *Node) RemoveChild(name string) bool {
	for i, c := range n.Children {
		if c.Name == name {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	out := &Node{
		Name:       n.Name,
		Properties: make([]*Property, len(n.Properties)),
		Children:   make([]*Node, len(n.Children)),
	}
	for i, p := range n.Properties {
		out.Properties[i] = p.Clone()
	}
	for i, c := range n.Children {
		out.Children[i] = c.Clone()
	}
	return out
}

// WalkFunc is called for every node visited by Walk. path holds the names
// from the walk's starting node (exclusive) down to n (inclusive).
type WalkFunc func(path []string, n *Node) error

// Walk visits n and its descendants depth-first in source order.
// Returning an error from fn stops the walk.
func (n *Node) Walk(fn WalkFunc) error {
	return walk(n, nil, fn)
}

func walk(n *Node, path []string, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for _, c := range n.Children {
		childPath := append(path[:len(path):len(path)], c.Name)
		if err := walk(c, childPath, fn); err != nil {
			return err
		}
	}
	return nil
}

// HasValue reports whether the property was written with " = value".
func (p *Property) HasValue() bool {
	return p.Value != nil
}

// ValueOr returns the property value, or def when the property has none.
func (p *Property) ValueOr(def string) string {
	if p.Value == nil {
		return def
	}
	return *p.Value
}

// SetValue replaces the value in place.
func (p *Property) SetValue(v string) {
	p.Value = &v
}

// ClearValue turns the property into a key-only property.
func (p *Property) ClearValue() {
	p.Value = nil
}

// Clone returns a copy of p that shares no storage with it.
func (p *Property) Clone() *Property {
	out := &Property{Key: p.Key}
	if p.Value != nil {
		v := *p.Value
		out.Value = &v
	}
	return out
}

// StringPtr returns a pointer to s, for building property values.
func StringPtr(s string) *string {
	return &s
}

// SplitPath splits a slash-separated node path into names.
// "", "/" and "//" all yield the empty path (the root itself).
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	segments := make([]string, 0)
	start := 0
	for i := range len(path) {
		if path[i] == PathSeparator[0] {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}
	if start < len(path) {
		segments = append(segments, path[start:])
	}

	return segments
}

// JoinPath renders names as an absolute slash-separated path.
func JoinPath(names []string) string {
	return PathSeparator + strings.Join(names, PathSeparator)
}
