package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/dtskit/internal/printer"
	"github.com/joshuapare/dtskit/pkg/ast"
	"github.com/joshuapare/dtskit/pkg/dts"
	"github.com/joshuapare/dtskit/pkg/types"
	"github.com/spf13/cobra"
)

var getRaw bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getRaw, "raw", false, "Print only the value")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <dts> <path> <property>",
		Short: "Get a property",
		Long: `The get command prints one property of a node.

Example:
  dtsctl get board.dts /sdhci@3440000 status
  dtsctl get board.dts /chosen bootargs --raw
  dtsctl get board.dts / model --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	dtsPath := args[0]
	nodePath := args[1]
	key := args[2]

	printVerbose("Parsing: %s\n", dtsPath)

	tree, err := dts.ParseFile(dtsPath, nil)
	if err != nil {
		return err
	}

	if getRaw && !jsonOut {
		node, err := tree.Root.Lookup(ast.SplitPath(nodePath)...)
		if err != nil {
			return err
		}
		prop := node.FindProperty(key)
		if prop == nil {
			return types.NotFound("property %q not found in %s", key, nodePath)
		}
		fmt.Println(prop.ValueOr(""))
		return nil
	}

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatDTS
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if err := printer.New(tree.Root, os.Stdout, opts).PrintProperty(nodePath, key); err != nil {
		return fmt.Errorf("failed to get property: %w", err)
	}
	return nil
}
