package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dtskit/pkg/types"
)

// copyCompiler stands in for dtc by copying files in both directions.
type copyCompiler struct {
	calls int
}

func (c *copyCompiler) copy(src, dst string) error {
	c.calls++
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func (c *copyCompiler) Decompile(_ context.Context, dtb, dts string) error { return c.copy(dtb, dts) }
func (c *copyCompiler) Compile(_ context.Context, dts, dtb string) error { return c.copy(dts, dtb) }

func setupPatch(t *testing.T) (conf, dtb string, compiler *copyCompiler) {
	t.Helper()
	dir := t.TempDir()
	dtb = filepath.Join(dir, "board.dtb")
	require.NoError(t, os.WriteFile(dtb, []byte(boardDTS), 0o644))

	conf = filepath.Join(dir, "extlinux.conf")
	content := strings.Replace(extlinuxConf, "/boot/dtb/kernel_tegra234-p3768-0000+p3767-0005-nv.dtb", dtb, 1)
	require.NoError(t, os.WriteFile(conf, []byte(content), 0o644))

	policy := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(policy, []byte(`patches:
  - name: sdcard
    path: [sdhci@3440000]
    set:
      - property: status
        value: '"okay"'
`), 0o644))

	resetFlags()
	patchExtlinux = conf
	patchPolicy = policy
	patchDTC = ""
	patchLabel = ""
	patchDryRun = false
	compiler = &copyCompiler{}
	patchCompiler = compiler
	t.Cleanup(func() { patchCompiler = nil })
	return conf, dtb, compiler
}

func TestPatchCommand(t *testing.T) {
	conf, dtb, compiler := setupPatch(t)

	output, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.calls)
	assertContains(t, output, []string{
		`Patched entry "primary"`,
		"1 applied, 0 skipped, 1 properties changed",
		`Boot entry "patched_primary" added`,
	})

	newDTB := strings.TrimSuffix(dtb, ".dtb") + "_new.dtb"
	blob, err := os.ReadFile(newDTB)
	require.NoError(t, err)
	assert.Contains(t, string(blob), `status = "okay";`)

	data, err := os.ReadFile(conf)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LABEL patched_primary\n\tMENU LABEL patched_primary kernel\n")
	assert.Contains(t, string(data), "\tFDT "+newDTB+"\n")

	// Second run finds the entry already present.
	output, err = captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"already present"})
}

func TestPatchCommand_DryRun(t *testing.T) {
	conf, _, compiler := setupPatch(t)
	patchDryRun = true
	before, err := os.ReadFile(conf)
	require.NoError(t, err)

	output, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.NoError(t, err)
	assert.Equal(t, 1, compiler.calls, "decompile only")
	assert.True(t, strings.HasPrefix(output, "/dts-v1/;\n"))
	assert.Contains(t, output, `status = "okay";`)

	after, err := os.ReadFile(conf)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPatchCommand_JSON(t *testing.T) {
	setupPatch(t)
	patchDryRun = true
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"dry_run": true`, `"applied": 1`})
}

func TestPatchCommand_LabelNotFound(t *testing.T) {
	setupPatch(t)
	patchLabel = "backup"

	_, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPatchCommand_IncompleteEntry(t *testing.T) {
	setupPatch(t)
	patchLabel = "recovery"

	_, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.ErrorIs(t, err, types.ErrState)
	assert.Contains(t, err.Error(), "FDT")
}

func TestPatchCommand_BadPolicy(t *testing.T) {
	setupPatch(t)
	patchPolicy = writeTestFile(t, "bad.yaml", "patches: []\n")

	_, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no patches")
}

func TestPatchCommand_ExternalCompiler(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	_, _, _ = setupPatch(t)
	patchCompiler = nil
	patchDryRun = true

	fake := filepath.Join(t.TempDir(), "dtc")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\ncp \"$5\" \"$7\"\n"), 0o755))
	t.Setenv(envDTC, fake)

	output, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.NoError(t, err, fmt.Sprintf("output: %s", output))
	assert.Contains(t, output, `status = "okay";`)
}

func TestPatchCommand_CompilerMissing(t *testing.T) {
	setupPatch(t)
	patchCompiler = nil
	patchDTC = filepath.Join(t.TempDir(), "no-such-dtc")

	_, err := captureOutput(t, func() error {
		return runPatch(context.Background())
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrExternal)
	assert.Contains(t, err.Error(), "not found")
}
