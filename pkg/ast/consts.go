package ast

const (
	// ============================================================================
	// Structural Limits
	// ============================================================================

	// DefaultMaxDepth bounds nesting. Decompiled board trees rarely exceed 10.
	DefaultMaxDepth = 64

	// DefaultMaxChildren bounds the direct children of a single node.
	DefaultMaxChildren = 4096

	// DefaultMaxProperties bounds the properties of a single node.
	DefaultMaxProperties = 4096

	// DefaultMaxNameLen bounds node header and property key length in bytes.
	DefaultMaxNameLen = 1024

	// StrictMaxDepth is the nesting bound used by StrictLimits.
	StrictMaxDepth = 16

	// StrictMaxChildren is the per-node child bound used by StrictLimits.
	StrictMaxChildren = 256

	// StrictMaxProperties is the per-node property bound used by StrictLimits.
	StrictMaxProperties = 256

	// StrictMaxNameLen is the name length bound used by StrictLimits.
	StrictMaxNameLen = 128
)
