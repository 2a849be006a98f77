package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/dtskit/internal/printer"
	"github.com/joshuapare/dtskit/pkg/dts"
	"github.com/spf13/cobra"
)

var (
	treeDepth      int
	treeProperties bool
	treeCompact    bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 3, "Maximum depth")
	cmd.Flags().BoolVar(&treeProperties, "properties", false, "Show properties too")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <dts> [path]",
		Short: "Display tree structure",
		Long: `The tree command displays the node hierarchy of a device tree.

Example:
  dtsctl tree board.dts
  dtsctl tree board.dts /cam_i2cmux --depth 2
  dtsctl tree board.dts --properties --depth 1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	dtsPath := args[0]
	nodePath := "/"
	if len(args) > 1 {
		nodePath = args[1]
	}

	printVerbose("Parsing: %s\n", dtsPath)

	tree, err := dts.ParseFile(dtsPath, nil)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.ShowProperties = treeProperties
	opts.MaxDepth = treeDepth
	opts.PrintMetadata = false

	if jsonOut {
		opts.Format = printer.FormatJSON
		return printer.New(tree.Root, os.Stdout, opts).PrintTree(nodePath)
	}

	opts.Format = printer.FormatText
	if treeCompact {
		opts.IndentSize = 1
	}

	if err := printer.New(tree.Root, os.Stdout, opts).PrintTree(nodePath); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
