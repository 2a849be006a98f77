package dtstext

import (
	"strings"

	"github.com/joshuapare/dtskit/pkg/ast"
	"github.com/joshuapare/dtskit/pkg/types"
)

// isOpenAndClose reports whether a line carries both structural markers.
func isOpenAndClose(line string) bool {
	trim := strings.TrimSpace(line)
	return strings.Contains(trim, NodeOpen) && strings.Contains(trim, NodeClose)
}

// nodeName extracts the header text of an open line.
func nodeName(line string, idx int) (string, error) {
	trim := strings.TrimSpace(line)
	if !strings.HasSuffix(trim, NodeOpen) {
		return "", types.Malformed("dtstext: line %d: node header %q does not end with %q", idx+1, trim, NodeOpen)
	}
	name := strings.TrimSpace(strings.TrimSuffix(trim, NodeOpen))
	if name == "" {
		return "", types.Malformed("dtstext: line %d: node header has no name", idx+1)
	}
	return name, nil
}

// parseProperty converts a property or flag line. ok is false for lines that
// contribute nothing (blank, comment, directives).
func parseProperty(line string, idx int) (prop *ast.Property, ok bool, err error) {
	trim := strings.TrimSpace(line)
	switch Classify(line) {
	case LineProperty:
		key, raw, _ := strings.Cut(trim, PropertySeparator)
		key = strings.TrimSpace(key)
		raw = strings.TrimSpace(raw)
		if key == "" {
			return nil, false, types.Malformed("dtstext: line %d: property %q has no key", idx+1, trim)
		}
		if !strings.HasSuffix(raw, Terminator) {
			return nil, false, types.Malformed("dtstext: line %d: property %q is not terminated by %q", idx+1, trim, Terminator)
		}
		value := strings.TrimSpace(strings.TrimSuffix(raw, Terminator))
		if value == "" {
			return nil, false, types.Malformed("dtstext: line %d: property %q has an empty value", idx+1, key)
		}
		return &ast.Property{Key: key, Value: &value}, true, nil

	case LineFlag:
		key := strings.TrimSpace(strings.TrimSuffix(trim, Terminator))
		if key == "" {
			return nil, false, types.Malformed("dtstext: line %d: empty property", idx+1)
		}
		return &ast.Property{Key: key}, true, nil

	case LineInvalid:
		return nil, false, types.Malformed("dtstext: line %d: cannot classify %q", idx+1, trim)

	case LineOpen, LineClose:
		// Structural lines are consumed through bracket events only.
		return nil, false, types.Malformed("dtstext: line %d: unexpected %q", idx+1, trim)
	}
	return nil, false, nil
}
