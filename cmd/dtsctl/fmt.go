package main

import (
	"bytes"
	"errors"
	"os"

	"github.com/joshuapare/dtskit/pkg/dts"
	"github.com/spf13/cobra"
)

var (
	fmtOutput string
	fmtWrite  bool
	fmtCheck  bool
)

func init() {
	cmd := newFmtCmd()
	cmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "Write to this file")
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the input file")
	cmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit non-zero if the file is not formatted")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <dts>",
		Short: "Reformat a device tree source file",
		Long: `The fmt command re-emits a file in canonical layout: tab indentation,
a blank line before the first child and between children. Comments are not
preserved.

Example:
  dtsctl fmt board.dts
  dtsctl fmt board.dts -w
  dtsctl fmt board.dts -o clean.dts
  dtsctl fmt board.dts --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

var errNotFormatted = errors.New("file is not formatted")

func runFmt(args []string) error {
	dtsPath := args[0]
	if fmtWrite && fmtOutput != "" {
		return errors.New("--write and --output are mutually exclusive")
	}

	printVerbose("Parsing: %s\n", dtsPath)

	tree, err := dts.ParseFile(dtsPath, nil)
	if err != nil {
		return err
	}
	out := dts.Format(tree)

	if fmtCheck {
		orig, err := os.ReadFile(dtsPath)
		if err != nil {
			return err
		}
		if !bytes.Equal(orig, out) {
			return errNotFormatted
		}
		printInfo("%s is formatted\n", dtsPath)
		return nil
	}

	switch {
	case fmtWrite:
		return dts.WriteFile(dtsPath, tree, nil)
	case fmtOutput != "":
		return dts.WriteFile(fmtOutput, tree, nil)
	default:
		_, err := os.Stdout.Write(out)
		return err
	}
}
