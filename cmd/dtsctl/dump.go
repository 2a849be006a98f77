package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/dtskit/internal/printer"
	"github.com/joshuapare/dtskit/pkg/dts"
	"github.com/spf13/cobra"
)

var dumpDepth int

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <dts> [path]",
		Short: "Dump nodes and properties",
		Long: `The dump command prints every node below path with its properties and
property/child counts.

Example:
  dtsctl dump board.dts
  dtsctl dump board.dts /cam_i2cmux --depth 2
  dtsctl dump board.dts --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
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
	opts.MaxDepth = dumpDepth
	opts.PrintMetadata = true
	opts.Format = printer.FormatText
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.New(tree.Root, os.Stdout, opts).PrintTree(nodePath); err != nil {
		return fmt.Errorf("failed to dump %s: %w", nodePath, err)
	}

	if len(tree.Overlays) > 0 {
		printVerbose("\n%d overlay node(s) not shown\n", len(tree.Overlays))
	}
	return nil
}
