package dtstext

import (
	"github.com/joshuapare/dtskit/pkg/types"
)

// BracketKind distinguishes node opens from node closes.
type BracketKind int

const (
	BracketOpen BracketKind = iota
	BracketClose
)

func (k BracketKind) String() string {
	if k == BracketOpen {
		return "open"
	}
	return "close"
}

// Bracket is a structural event tied to a source line.
type Bracket struct {
	Line int // zero-based line index
	Kind BracketKind
}

// IndexBrackets scans lines once and records every node open and close.
// Comment lines are ignored. The result is ordered by line, balanced, and
// properly nested; anything else is an ErrKindMalformed error.
func IndexBrackets(lines []string) ([]Bracket, error) {
	events := make([]Bracket, 0, InitialBracketCapacity)
	depth := 0

	for i, line := range lines {
		switch Classify(line) {
		case LineOpen:
			events = append(events, Bracket{Line: i, Kind: BracketOpen})
			depth++
		case LineClose:
			if depth == 0 {
				return nil, types.Malformed("dtstext: line %d: %q closes a node that was never opened", i+1, line)
			}
			events = append(events, Bracket{Line: i, Kind: BracketClose})
			depth--
		case LineInvalid:
			if isOpenAndClose(line) {
				return nil, types.Malformed("dtstext: line %d: %q both opens and closes a node", i+1, line)
			}
		}
	}

	if len(events) == 0 {
		return nil, types.Malformed("dtstext: no node found")
	}
	if depth != 0 {
		return nil, types.Malformed("dtstext: %d node(s) never closed", depth)
	}
	return events, nil
}
