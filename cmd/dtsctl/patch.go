package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joshuapare/dtskit/internal/dtc"
	"github.com/joshuapare/dtskit/pkg/dts"
	"github.com/joshuapare/dtskit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	patchExtlinux string
	patchPolicy   string
	patchDTC      string
	patchLabel    string
	patchDryRun   bool
	patchTimeout  time.Duration
)

// patchCompiler overrides the compiler in tests.
var patchCompiler dts.Compiler

func init() {
	cmd := newPatchCmd()
	cmd.Flags().StringVar(&patchExtlinux, "extlinux", "", "Boot configuration path (env "+envExtlinux+")")
	cmd.Flags().StringVar(&patchPolicy, "policy", "", "Patch policy YAML file (default: built-in policy)")
	cmd.Flags().StringVar(&patchDTC, "dtc", "", "Device tree compiler binary (env "+envDTC+")")
	cmd.Flags().StringVar(&patchLabel, "label", "", "Entry to patch (default: the DEFAULT entry)")
	cmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Print the patched source without writing anything")
	cmd.Flags().DurationVar(&patchTimeout, "timeout", dtc.DefaultTimeout, "Timeout per compiler run")
	rootCmd.AddCommand(cmd)
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Patch the device tree of a boot entry",
		Long: `The patch command decompiles the device tree blob of the default boot
entry, applies a patch policy, recompiles it to <name>_new.dtb and appends a
"patched_" entry to extlinux.conf. The original blob is backed up first.

Without --policy the built-in policy is used: it enables the microSD slot and
routes the IMX477 and IMX219 cameras to CSI serial interface A.

Example:
  sudo dtsctl patch
  dtsctl patch --dry-run > preview.dts
  dtsctl patch --policy carrier.yaml --label primary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runPatch(ctx)
		},
	}
	return cmd
}

func runPatch(ctx context.Context) error {
	opts := dts.PatchBootOptions{
		BootConfig: resolvePath(patchExtlinux, envExtlinux, dts.DefaultBootConfig),
		Label:      patchLabel,
		Compiler:   patchCompiler,
		DryRun:     patchDryRun,
	}
	if opts.Compiler == nil {
		compiler := &dts.ExecCompiler{
			Binary:  resolvePath(patchDTC, envDTC, dtc.DefaultBinary),
			Timeout: patchTimeout,
		}
		if !compiler.Available() {
			return &types.Error{
				Kind: types.ErrKindExternal,
				Msg:  fmt.Sprintf("device tree compiler %q not found (install device-tree-compiler or set %s)", compiler.Binary, envDTC),
			}
		}
		opts.Compiler = compiler
	}
	if patchPolicy != "" {
		policy, err := dts.LoadPolicy(patchPolicy)
		if err != nil {
			return err
		}
		opts.Policy = policy
	}

	printVerbose("Boot configuration: %s\n", opts.BootConfig)

	report, err := dts.PatchBoot(ctx, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(report)
	}
	if report.DryRun {
		_, err := fmt.Fprint(os.Stdout, report.Rendered)
		return err
	}

	printInfo("Patched entry %q (%s)\n", report.Entry.Label, report.Paths.Blob)
	printInfo("  Backup:  %s\n", report.Backup)
	printInfo("  Source:  %s\n", report.Paths.NewSource)
	printInfo("  Blob:    %s\n", report.Paths.NewBlob)
	printInfo("  Patches: %d applied, %d skipped, %d properties changed\n",
		report.Patch.Applied, report.Patch.Skipped, len(report.Patch.Changes))
	for _, c := range report.Patch.Changes {
		printVerbose("    %s: %s %s\n", c.Patch, c.Node, c.Property)
	}
	if report.EntryAdded {
		printInfo("\n✓ Boot entry %q added to %s\n", report.NewEntry.Label, opts.BootConfig)
	} else {
		printInfo("\nBoot entry %q already present in %s\n", report.NewEntry.Label, opts.BootConfig)
	}
	return nil
}
