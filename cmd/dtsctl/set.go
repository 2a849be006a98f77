package main

import (
	"fmt"

	"github.com/joshuapare/dtskit/pkg/ast"
	"github.com/joshuapare/dtskit/pkg/dts"
	"github.com/joshuapare/dtskit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	setCreate bool
	setOutput string
	setBackup bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setCreate, "create", false, "Add the property if it doesn't exist")
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Write to this file instead of the input")
	cmd.Flags().BoolVar(&setBackup, "backup", true, "Create backup when writing in place")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <dts> <path> <property> [value]",
		Short: "Set a property",
		Long: `The set command assigns a property value. Values are written verbatim,
so strings need their quotes. Omitting the value makes a flag property.

Example:
  dtsctl set board.dts /sdhci@3440000 status '"okay"'
  dtsctl set board.dts /gpio-keys wakeup-source --create
  dtsctl set board.dts /chosen bootargs '"quiet"' -o board_new.dts`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	dtsPath := args[0]
	nodePath := args[1]
	key := args[2]
	var value *string
	if len(args) > 3 {
		value = ast.StringPtr(args[3])
	}

	printVerbose("Parsing: %s\n", dtsPath)

	tree, err := dts.ParseFile(dtsPath, nil)
	if err != nil {
		return err
	}

	node, err := tree.Root.Lookup(ast.SplitPath(nodePath)...)
	if err != nil {
		return err
	}

	var old *string
	created := false
	if prop := node.FindProperty(key); prop != nil {
		old = prop.Value
		prop.Value = value
	} else if setCreate {
		node.AddProperty(key, value)
		created = true
	} else {
		return types.NotFound("property %q not found in %s (use --create to add it)", key, nodePath)
	}

	outPath := dtsPath
	inPlace := true
	if setOutput != "" {
		outPath = setOutput
		inPlace = false
	}
	if err := dts.WriteFile(outPath, tree, &dts.WriteOptions{CreateBackup: inPlace && setBackup}); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":     outPath,
			"path":     nodePath,
			"property": key,
			"old":      old,
			"new":      value,
			"created":  created,
			"success":  true,
		}
		return printJSON(result)
	}

	printInfo("\nSetting property in %s:\n", outPath)
	printInfo("  Path: %s\n", nodePath)
	printInfo("  Property: %s\n", key)
	if old != nil {
		printInfo("  Old: %s\n", *old)
	}
	if value != nil {
		printInfo("  New: %s\n", *value)
	} else {
		printInfo("  New: (flag)\n")
	}
	printInfo("\n✓ Property set successfully\n")

	if inPlace && setBackup {
		printInfo("Backup created: %s.backup\n", dtsPath)
	}
	return nil
}
