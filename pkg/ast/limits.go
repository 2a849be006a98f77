package ast

import (
	"errors"
	"fmt"

	"github.com/joshuapare/dtskit/pkg/types"
)

// Limits defines structural bounds enforced while parsing or validating a
// tree, so that hostile input cannot exhaust the stack or memory.
type Limits struct {
	// MaxDepth is the maximum nesting depth; the root is depth 1.
	MaxDepth int

	// MaxChildren is the maximum number of direct children of one node.
	MaxChildren int

	// MaxProperties is the maximum number of properties of one node.
	MaxProperties int

	// MaxNameLen is the maximum length of a node name or property key.
	MaxNameLen int
}

// DefaultLimits returns bounds comfortably above any real board tree.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:      DefaultMaxDepth,
		MaxChildren:   DefaultMaxChildren,
		MaxProperties: DefaultMaxProperties,
		MaxNameLen:    DefaultMaxNameLen,
	}
}

// StrictLimits returns conservative bounds for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:      StrictMaxDepth,
		MaxChildren:   StrictMaxChildren,
		MaxProperties: StrictMaxProperties,
		MaxNameLen:    StrictMaxNameLen,
	}
}

// ValidationError represents a limit validation failure.
type ValidationError struct {
	Limit    string // Name of the limit that was exceeded
	Current  int
	Maximum  int
	NodePath string // Path to the node (if applicable)
}

func (e *ValidationError) Error() string {
	if e.NodePath != "" {
		return fmt.Sprintf("limit exceeded at '%s': %s is %d (max %d)",
			e.NodePath, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("limit exceeded: %s is %d (max %d)", e.Limit, e.Current, e.Maximum)
}

// CheckNode validates the node's own name and fan-out. Zero-valued limit
// fields are not enforced.
func (l Limits) CheckNode(n *Node) error {
	if l.MaxNameLen > 0 && len(n.Name) > l.MaxNameLen {
		return &ValidationError{Limit: "MaxNameLen", Current: len(n.Name), Maximum: l.MaxNameLen}
	}
	if l.MaxChildren > 0 && len(n.Children) > l.MaxChildren {
		return &ValidationError{Limit: "MaxChildren", Current: len(n.Children), Maximum: l.MaxChildren}
	}
	if l.MaxProperties > 0 && len(n.Properties) > l.MaxProperties {
		return &ValidationError{Limit: "MaxProperties", Current: len(n.Properties), Maximum: l.MaxProperties}
	}
	if l.MaxNameLen > 0 {
		for _, p := range n.Properties {
			if len(p.Key) > l.MaxNameLen {
				return &ValidationError{Limit: "MaxNameLen", Current: len(p.Key), Maximum: l.MaxNameLen}
			}
		}
	}
	return nil
}

// CheckDepth validates a nesting depth (root = 1).
func (l Limits) CheckDepth(depth int) error {
	if l.MaxDepth > 0 && depth > l.MaxDepth {
		return &ValidationError{Limit: "MaxDepth", Current: depth, Maximum: l.MaxDepth}
	}
	return nil
}

// Validate checks every node of the tree, root and overlays, against limits.
func (t *Tree) Validate(limits Limits) error {
	nodes := append([]*Node{t.Root}, t.Overlays...)
	for _, top := range nodes {
		if top == nil {
			continue
		}
		err := top.Walk(func(path []string, n *Node) error {
			if err := limits.CheckDepth(len(path) + 1); err != nil {
				return withPath(err, path)
			}
			return withPath(limits.CheckNode(n), path)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func withPath(err error, path []string) error {
	ve := &ValidationError{}
	if errors.As(err, &ve) {
		ve.NodePath = JoinPath(path)
	}
	return err
}

// LimitViolation wraps a ValidationError into a types.Error.
func LimitViolation(err error) error {
	ve := &ValidationError{}
	if errors.As(err, &ve) {
		return &types.Error{
			Kind: types.ErrKindLimit,
			Msg:  ve.Error(),
			Err:  ve,
		}
	}
	return err
}
