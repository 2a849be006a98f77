package main

import (
	"os"

	"github.com/joshuapare/dtskit/internal/patch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPolicyCmd())
}

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy [file]",
		Short: "Show or validate a patch policy",
		Long: `Without arguments the policy command prints the built-in patch policy,
a starting point for a custom one. With a file it validates that file.

Example:
  dtsctl policy > carrier.yaml
  dtsctl policy carrier.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicy(args)
		},
	}
	return cmd
}

func runPolicy(args []string) error {
	if len(args) == 0 {
		if jsonOut {
			return printJSON(patch.Default())
		}
		_, err := os.Stdout.Write(patch.DefaultYAML())
		return err
	}

	p, err := patch.Load(args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(p)
	}
	printInfo("%s: %d patch(es) OK\n", args[0], len(p.Patches))
	return nil
}
