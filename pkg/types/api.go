package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindMalformed ErrKind = iota // unbalanced braces, unclassifiable lines, truncated nodes
	ErrKindNotFound                 // missing node/property/boot entry
	ErrKindLimit                    // document exceeds configured structural limits
	ErrKindExternal                 // external compiler invocation failed
	ErrKindState                    // invalid operation for current state (e.g., incomplete entry)
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindMalformed:
		return "malformed"
	case ErrKindNotFound:
		return "not found"
	case ErrKindLimit:
		return "limit"
	case ErrKindExternal:
		return "external"
	case ErrKindState:
		return "state"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, types.ErrNotFound) matches any not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrMalformed indicates the document text is structurally inconsistent.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed document"}
	// ErrNotFound indicates a missing node, property or boot entry.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrLimit indicates a structural limit was exceeded.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "limit exceeded"}
	// ErrExternal indicates an external tool failed.
	ErrExternal = &Error{Kind: ErrKindExternal, Msg: "external tool failed"}
	// ErrState indicates an operation is not valid for the current state.
	ErrState = &Error{Kind: ErrKindState, Msg: "invalid state"}
)

// Malformed builds an ErrKindMalformed error with a formatted message.
func Malformed(format string, args ...any) *Error {
	return &Error{Kind: ErrKindMalformed, Msg: fmt.Sprintf(format, args...)}
}

// NotFound builds an ErrKindNotFound error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrKindNotFound, Msg: fmt.Sprintf(format, args...)}
}
