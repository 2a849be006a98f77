package dtstext

import "strings"

// LineKind is the structural role of a single source line.
type LineKind int

const (
	LineBlank    LineKind = iota // empty or whitespace only
	LineComment                  // starts with "//"
	LineOpen                     // contains "{": a node header
	LineClose                    // contains "};": a node terminator
	LineProperty                 // "key = value;"
	LineFlag                     // "key;"
	LineOther                    // anything else (version header, directives); skipped
	LineInvalid                  // has "=" but no " = " separator, or is both open and close
)

var lineKindNames = [...]string{
	LineBlank:    "blank",
	LineComment:  "comment",
	LineOpen:     "open",
	LineClose:    "close",
	LineProperty: "property",
	LineFlag:     "flag",
	LineOther:    "other",
	LineInvalid:  "invalid",
}

func (k LineKind) String() string {
	if int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return "unknown"
}

// Classify decides the role of one line. Open and close take precedence
// over property shapes, matching how the bracket indexer sees the line.
func Classify(line string) LineKind {
	trim := strings.TrimSpace(line)
	if trim == "" {
		return LineBlank
	}
	if strings.HasPrefix(trim, CommentPrefix) {
		return LineComment
	}

	open := strings.Contains(trim, NodeOpen)
	closing := strings.Contains(trim, NodeClose)
	switch {
	case open && closing:
		return LineInvalid
	case open:
		return LineOpen
	case closing:
		return LineClose
	}

	if strings.Contains(trim, PropertySeparator) {
		return LineProperty
	}
	if strings.Contains(trim, Assignment) {
		return LineInvalid
	}
	if strings.HasSuffix(trim, Terminator) {
		return LineFlag
	}
	return LineOther
}
