package dts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/dtskit/internal/dtc"
	"github.com/joshuapare/dtskit/internal/extlinux"
	"github.com/joshuapare/dtskit/internal/fileio"
	"github.com/joshuapare/dtskit/internal/logger"
	"github.com/joshuapare/dtskit/pkg/types"
)

// PatchBoot patches the device tree of a boot entry and registers the
// result as a new entry.
//
// Steps:
//  1. Read the boot configuration and select the entry (Label or DEFAULT).
//  2. Require every entry field to be set.
//  3. Back up the entry's .dtb to <dtb>.backup.
//  4. Decompile it to <base>.dts.
//  5. Parse and apply the policy.
//  6. Write <base>_new.dts and compile it to <base>_new.dtb.
//  7. Append a "patched_" entry pointing at the new blob, unless an entry
//     with that label exists. The configuration is backed up first.
//
// A failure at any step aborts the run. Files written by earlier steps are
// left in place.
func PatchBoot(ctx context.Context, opts PatchBootOptions) (*PatchBootReport, error) {
	confPath := opts.BootConfig
	if confPath == "" {
		confPath = DefaultBootConfig
	}
	policy := opts.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}
	compiler := opts.Compiler
	if compiler == nil {
		compiler = &dtc.Exec{Timeout: opts.CompilerTimeout}
	}
	fopts := fileio.Options{NoSync: opts.NoSync}

	if !fileExists(confPath) {
		return nil, types.NotFound("boot configuration %s not found", confPath)
	}
	confData, err := fileio.ReadBytes(confPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", confPath, err)
	}
	conf, err := extlinux.Parse(confData)
	if err != nil {
		return nil, err
	}

	entry, err := selectEntry(conf, opts.Label)
	if err != nil {
		return nil, err
	}
	if err := entry.Complete(); err != nil {
		return nil, err
	}
	logger.Info("boot entry selected", "label", entry.Label, "fdt", entry.FDT)

	paths, err := dtc.PathsFor(entry.FDT)
	if err != nil {
		return nil, err
	}

	report := &PatchBootReport{Entry: *entry, Paths: paths, DryRun: opts.DryRun}
	report.NewEntry = extlinux.PatchedEntry(*entry, paths.NewBlob)

	source := paths.Source
	if opts.DryRun {
		scratch, err := os.MkdirTemp("", "dtsctl-")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(scratch)
		source = filepath.Join(scratch, filepath.Base(paths.Source))
	} else {
		backup, err := fileio.Backup(paths.Blob, fopts)
		if err != nil {
			return nil, fmt.Errorf("back up %s: %w", paths.Blob, err)
		}
		report.Backup = backup
		logger.Info("device tree blob backed up", "path", backup)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := compiler.Decompile(ctx, paths.Blob, source); err != nil {
		return nil, err
	}
	logger.Info("device tree decompiled", "source", source)

	tree, err := ParseFile(source, &ParseOptions{Limits: opts.Limits})
	if err != nil {
		return nil, err
	}
	if tree.Root == nil || !tree.Root.IsRoot() {
		return nil, types.Malformed("%s: first node is not the root node", source)
	}

	patchReport, err := policy.Apply(tree.Root)
	report.Patch = patchReport
	if err != nil {
		return report, err
	}

	if opts.DryRun {
		report.Rendered = string(Format(tree))
		return report, nil
	}

	if err := WriteFile(paths.NewSource, tree, &WriteOptions{NoSync: opts.NoSync}); err != nil {
		return report, fmt.Errorf("write %s: %w", paths.NewSource, err)
	}
	logger.Info("patched source written", "path", paths.NewSource)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	if err := compiler.Compile(ctx, paths.NewSource, paths.NewBlob); err != nil {
		return report, err
	}
	logger.Info("patched blob compiled", "path", paths.NewBlob)

	if _, exists := conf.Entry(report.NewEntry.Label); exists {
		logger.Info("boot entry already present", "label", report.NewEntry.Label)
		return report, nil
	}
	if _, err := fileio.Backup(confPath, fopts); err != nil {
		return report, fmt.Errorf("back up %s: %w", confPath, err)
	}
	if err := fileio.WriteFileAtomic(confPath, extlinux.AppendEntry(confData, report.NewEntry), 0o644, fopts); err != nil {
		return report, fmt.Errorf("write %s: %w", confPath, err)
	}
	report.EntryAdded = true
	logger.Info("boot entry added", "label", report.NewEntry.Label)

	return report, nil
}

func selectEntry(conf *BootConfig, label string) (*BootEntry, error) {
	if label == "" {
		return conf.DefaultEntry()
	}
	e, ok := conf.Entry(label)
	if !ok {
		return nil, types.NotFound("boot entry %q not found", label)
	}
	return e, nil
}
