package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dtskit/internal/dtstext"
	"github.com/joshuapare/dtskit/pkg/ast"
	"github.com/joshuapare/dtskit/pkg/types"
)

const board = `/dts-v1/;

/ {
	model = "NVIDIA Jetson Orin Nano";

	chosen {
		bootargs = "console=ttyTCU0";
	};

	gpio-keys {
		compatible = "gpio-keys";
		wakeup-source;

		power {
			label = "Power";
		};
	};
};
`

func newPrinter(t *testing.T, opts Options) (*Printer, *bytes.Buffer) {
	t.Helper()
	tree, err := dtstext.Parse(board, dtstext.DefaultParseOptions())
	require.NoError(t, err)
	var buf bytes.Buffer
	return New(tree.Root, &buf, opts), &buf
}

func TestPrinter_PrintTree_Text(t *testing.T) {
	p, buf := newPrinter(t, DefaultOptions())
	require.NoError(t, p.PrintTree("/"))

	want := `[/]
  model = "NVIDIA Jetson Orin Nano"

  [chosen]
    bootargs = "console=ttyTCU0"

  [gpio-keys]
    compatible = "gpio-keys"
    wakeup-source

    [power]
      label = "Power"
`
	assert.Equal(t, want, buf.String())
}

func TestPrinter_PrintTree_MaxDepth(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDepth = 1
	opts.ShowProperties = false
	p, buf := newPrinter(t, opts)
	require.NoError(t, p.PrintTree("/gpio-keys"))
	assert.Equal(t, "[gpio-keys]\n", buf.String())
}

func TestPrinter_PrintNode_Metadata(t *testing.T) {
	opts := DefaultOptions()
	opts.PrintMetadata = true
	p, buf := newPrinter(t, opts)
	require.NoError(t, p.PrintNode("gpio-keys"))

	assert.Contains(t, buf.String(), "[gpio-keys]\n  Properties: 2, Children: 1\n")
	assert.NotContains(t, buf.String(), "[power]")
}

func TestPrinter_PrintTree_JSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p, buf := newPrinter(t, opts)
	require.NoError(t, p.PrintTree("/gpio-keys"))

	var got jsonNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "gpio-keys", got.Name)
	assert.Equal(t, "/gpio-keys", got.Path)
	require.Len(t, got.Properties, 2)
	assert.Equal(t, "wakeup-source", got.Properties[1].Key)
	assert.Nil(t, got.Properties[1].Value)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "/gpio-keys/power", got.Children[0].Path)
	assert.Nil(t, got.PropertyCount)
}

func TestPrinter_PrintNode_JSONMetadata(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.PrintMetadata = true
	p, buf := newPrinter(t, opts)
	require.NoError(t, p.PrintNode(""))

	var got jsonNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/", got.Path)
	require.NotNil(t, got.ChildCount)
	assert.Equal(t, 2, *got.ChildCount)
	assert.Empty(t, got.Children)
}

func TestPrinter_PrintProperty(t *testing.T) {
	tests := []struct {
		format Format
		key    string
		want   string
	}{
		{FormatText, "label", "label = \"Power\"\n"},
		{FormatDTS, "label", "label = \"Power\";\n"},
		{FormatJSON, "label", "{\n  \"key\": \"label\",\n  \"value\": \"\\\"Power\\\"\"\n}\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Format = tt.format
			p, buf := newPrinter(t, opts)
			require.NoError(t, p.PrintProperty("/gpio-keys/power", tt.key))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_PrintProperty_Flag(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatDTS
	p, buf := newPrinter(t, opts)
	require.NoError(t, p.PrintProperty("/gpio-keys", "wakeup-source"))
	assert.Equal(t, "wakeup-source;\n", buf.String())
}

func TestPrinter_DTS(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatDTS
	p, buf := newPrinter(t, opts)
	require.NoError(t, p.PrintTree("/"))
	assert.Equal(t, board, buf.String())

	buf.Reset()
	require.NoError(t, p.PrintNode("/gpio-keys"))
	assert.Equal(t, "gpio-keys {\n\tcompatible = \"gpio-keys\";\n\twakeup-source;\n};\n", buf.String())
}

func TestPrinter_NotFound(t *testing.T) {
	p, _ := newPrinter(t, DefaultOptions())

	err := p.PrintTree("/gpio-keys/reset")
	assert.ErrorIs(t, err, types.ErrNotFound)

	err = p.PrintProperty("/chosen", "stdout-path")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Contains(t, err.Error(), "/chosen")
}

func TestNew_DefaultIndent(t *testing.T) {
	p := New(ast.NewNode(ast.RootName), &bytes.Buffer{}, Options{})
	assert.Equal(t, DefaultIndentSize, p.opts.IndentSize)
}
