package dtstext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dtskit/internal/textenc"
	"github.com/joshuapare/dtskit/pkg/types"
)

func TestIndexBrackets(t *testing.T) {
	input := `/dts-v1/;

/ {
	model = "board";
	// gone {
	a {
		b {
		};
	};

	c {
	};
};
`
	events, err := IndexBrackets(textenc.SplitLines(input))
	require.NoError(t, err)

	want := []Bracket{
		{Line: 2, Kind: BracketOpen},
		{Line: 5, Kind: BracketOpen},
		{Line: 6, Kind: BracketOpen},
		{Line: 7, Kind: BracketClose},
		{Line: 8, Kind: BracketClose},
		{Line: 10, Kind: BracketOpen},
		{Line: 11, Kind: BracketClose},
		{Line: 12, Kind: BracketClose},
	}
	assert.Equal(t, want, events)
}

func TestIndexBrackets_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "no nodes",
			input:   "/dts-v1/;\n",
			wantMsg: "no node found",
		},
		{
			name:    "unclosed",
			input:   "/ {\n\ta {\n\t};\n",
			wantMsg: "never closed",
		},
		{
			name:    "close before open",
			input:   "};\n/ {\n};\n",
			wantMsg: "never opened",
		},
		{
			name:    "open and close on one line",
			input:   "/ {\n\ta { };\n};\n",
			wantMsg: "both opens and closes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IndexBrackets(textenc.SplitLines(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrMalformed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// Every accepted document has balanced, properly nested events.
func TestIndexBrackets_BalancedInvariant(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		doc := GenerateDTS(Profile{Seed: seed, Depth: 1 + int(seed%4), ChildrenPerNode: 1 + int(seed%3), Comments: true})
		events, err := IndexBrackets(textenc.SplitLines(string(doc)))
		require.NoError(t, err)
		require.Zero(t, len(events)%2)

		depth := 0
		last := -1
		for _, e := range events {
			require.Greater(t, e.Line, last, "events must be ordered by line")
			last = e.Line
			if e.Kind == BracketOpen {
				depth++
			} else {
				depth--
			}
			require.GreaterOrEqual(t, depth, 0)
		}
		require.Zero(t, depth)
	}
}

func TestBracketKind_String(t *testing.T) {
	assert.Equal(t, "open", BracketOpen.String())
	assert.Equal(t, "close", BracketClose.String())
}
