// Package ast provides the in-memory representation of a device tree
// source (.dts) document.
//
// A Tree owns a root Node ("/") and any top-level overlay nodes that follow
// it. Every Node holds an ordered list of Properties and an ordered list of
// child Nodes; order is source order and is preserved on output.
//
// # Lookups
//
// FindProperty and FindChild search a single level and return nil when the
// name is absent. Absence is an ordinary result, not an error. Multi-level
// navigation is expressed by chaining, or with Lookup, which reports the
// path prefix that failed:
//
//	ep, err := tree.Root.Lookup("cam_i2cmux", "i2c@0", "rbpcv3_imx477_a@1a")
//	if err != nil {
//		return err // errors.Is(err, types.ErrNotFound)
//	}
//	if mode := ep.FindChild("mode0"); mode != nil {
//		if p := mode.FindProperty("tegra_sinterface"); p != nil {
//			p.SetValue(`"serial_a"`)
//		}
//	}
//
// # Values
//
// Property values are raw text, stored verbatim (quotes, angle brackets and
// all). A nil Value is distinct from an empty one and renders as "key;".
//
// # Limits
//
// Limits bounds nesting depth, fan-out and name length. The parser checks
// them while building a tree; Tree.Validate checks an existing tree.
package ast
