package main

import (
	"fmt"

	"github.com/joshuapare/dtskit/internal/fileio"
	"github.com/joshuapare/dtskit/pkg/dts"
	"github.com/spf13/cobra"
)

var entriesExtlinux string

func init() {
	cmd := newEntriesCmd()
	cmd.Flags().StringVar(&entriesExtlinux, "extlinux", "", "Boot configuration path (env "+envExtlinux+")")
	rootCmd.AddCommand(cmd)
}

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List boot menu entries",
		Long: `The entries command lists the entries of extlinux.conf and marks the
default one.

Example:
  dtsctl entries
  dtsctl entries --extlinux /mnt/boot/extlinux/extlinux.conf --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntries()
		},
	}
	return cmd
}

func runEntries() error {
	confPath := resolvePath(entriesExtlinux, envExtlinux, dts.DefaultBootConfig)
	printVerbose("Reading: %s\n", confPath)

	data, err := fileio.ReadBytes(confPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", confPath, err)
	}
	cfg, err := dts.ParseBootConfig(data)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cfg)
	}

	if cfg.MenuTitle != "" {
		printInfo("%s\n", cfg.MenuTitle)
	}
	if cfg.Timeout != nil {
		printInfo("Timeout: %d\n", *cfg.Timeout)
	}
	printInfo("Default: %s\n", cfg.Default)

	for _, e := range cfg.Entries {
		marker := " "
		if e.Label == cfg.Default {
			marker = "*"
		}
		fmt.Printf("\n%s %s\n", marker, e.Label)
		fmt.Printf("    Menu:   %s\n", e.MenuLabel)
		fmt.Printf("    Linux:  %s\n", e.Linux)
		fmt.Printf("    FDT:    %s\n", e.FDT)
		fmt.Printf("    Initrd: %s\n", e.Initrd)
		fmt.Printf("    Append: %s\n", e.Append)
	}
	return nil
}
