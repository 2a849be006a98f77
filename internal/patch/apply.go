package patch

import (
	"errors"
	"slices"

	"github.com/joshuapare/dtskit/internal/logger"
	"github.com/joshuapare/dtskit/pkg/ast"
	"github.com/joshuapare/dtskit/pkg/types"
)

// Change records one property assignment.
type Change struct {
	Patch    string  `json:"patch"`
	Node     string  `json:"node"`
	Property string  `json:"property"`
	Old      *string `json:"old,omitempty"`
	New      *string `json:"new,omitempty"`
	Created  bool    `json:"created,omitempty"`
}

// Report summarises an Apply run.
type Report struct {
	Applied int      `json:"applied"`
	Skipped int      `json:"skipped"`
	Changes []Change `json:"changes"`
}

// Apply runs every patch against root, in order. root is the "/" node.
//
// A patch whose anchor is missing is skipped when optional and fails
// otherwise. Any other missing node or property fails. Apply stops at the
// first failure; edits made before it remain in the tree.
func (p *Policy) Apply(root *ast.Node) (*Report, error) {
	report := &Report{}
	for _, pt := range p.Patches {
		anchor, err := root.Lookup(pt.Path...)
		if err != nil {
			if pt.Optional && errors.Is(err, types.ErrNotFound) {
				logger.Info("patch skipped", "patch", pt.Name, "reason", err.Error())
				report.Skipped++
				continue
			}
			return report, patchError(pt.Name, err)
		}

		for _, e := range pt.Set {
			nodePath := ast.JoinPath(append(slices.Clone(pt.Path), e.Node...))
			target, err := anchor.Lookup(e.Node...)
			if err != nil {
				return report, patchError(pt.Name, types.NotFound("node %s not found", nodePath))
			}

			change := Change{Patch: pt.Name, Node: nodePath, Property: e.Property, New: e.Value}
			prop := target.FindProperty(e.Property)
			switch {
			case prop != nil:
				change.Old = prop.Value
				prop.Value = e.Value
			case e.Create:
				target.AddProperty(e.Property, e.Value)
				change.Created = true
			default:
				return report, patchError(pt.Name, types.NotFound("property %s not found in %s", e.Property, nodePath))
			}
			logger.Debug("property set", "patch", pt.Name, "node", nodePath, "property", e.Property)
			report.Changes = append(report.Changes, change)
		}
		logger.Info("patch applied", "patch", pt.Name, "edits", len(pt.Set))
		report.Applied++
	}
	return report, nil
}

// patchError prefixes err with the patch name, keeping its kind.
func patchError(name string, err error) error {
	var te *types.Error
	if errors.As(err, &te) {
		return &types.Error{Kind: te.Kind, Msg: "patch " + name + ": " + te.Msg, Err: te.Err}
	}
	return err
}
