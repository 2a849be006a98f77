package main

import (
	"testing"
)

const extlinuxConf = `TIMEOUT 30
DEFAULT primary

MENU TITLE L4T boot options

LABEL primary
      MENU LABEL primary kernel
      LINUX /boot/Image
      FDT /boot/dtb/kernel_tegra234-p3768-0000+p3767-0005-nv.dtb
      INITRD /boot/initrd
      APPEND ${cbootargs} root=/dev/mmcblk0p1 rw rootwait

LABEL recovery
      MENU LABEL recovery kernel
      LINUX /boot/Image.recovery
`

func TestEntriesCommand(t *testing.T) {
	conf := writeTestFile(t, "extlinux.conf", extlinuxConf)

	t.Run("flag", func(t *testing.T) {
		resetFlags()
		entriesExtlinux = conf
		output, err := captureOutput(t, runEntries)
		if err != nil {
			t.Fatalf("runEntries() error = %v", err)
		}
		assertContains(t, output, []string{
			"L4T boot options",
			"Timeout: 30",
			"* primary",
			"  recovery",
			"FDT:    /boot/dtb/kernel_tegra234-p3768-0000+p3767-0005-nv.dtb",
		})
	})

	t.Run("environment", func(t *testing.T) {
		resetFlags()
		jsonOut = true
		entriesExtlinux = ""
		t.Setenv(envExtlinux, conf)
		output, err := captureOutput(t, runEntries)
		if err != nil {
			t.Fatalf("runEntries() error = %v", err)
		}
		assertJSON(t, output)
		assertContains(t, output, []string{`"default": "primary"`, `"label": "recovery"`})
	})

	t.Run("missing file", func(t *testing.T) {
		resetFlags()
		entriesExtlinux = conf + ".missing"
		_, err := captureOutput(t, runEntries)
		if err == nil {
			t.Fatal("runEntries() expected error for missing file")
		}
	})
}
