package dtstext

const (
	// ============================================================================
	// .dts File Format Tokens
	// ============================================================================

	// VersionHeader is the first line emitted before the root node
	VersionHeader = "/dts-v1/;"

	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// NodeOpen marks the start of a node body
	NodeOpen = "{"

	// NodeClose terminates a node body
	NodeClose = "};"

	// PropertySeparator separates a property key from its raw value
	PropertySeparator = " = "

	// Assignment is the bare assignment character; a line holding it without
	// PropertySeparator cannot be classified
	Assignment = "="

	// Terminator ends every property line
	Terminator = ";"

	// CommentPrefix marks a line comment
	CommentPrefix = "//"

	// ============================================================================
	// Output Formatting
	// ============================================================================

	// Indent is written once per depth level
	Indent = "\t"

	// Newline is the line ending used on output
	Newline = "\n"

	// HeaderSuffix follows a node name on its header line
	HeaderSuffix = " " + NodeOpen
)

const (
	// InitialBracketCapacity pre-sizes the bracket event slice
	InitialBracketCapacity = 256
)
