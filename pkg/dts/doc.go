/*
Package dts reads, edits and writes device tree source (.dts) documents.

# Quick Start

Parse a decompiled tree, change a property, and write it back:

	tree, err := dts.ParseFile("board.dts", nil)
	if err != nil {
	    log.Fatal(err)
	}
	sd, err := tree.Root.Lookup("sdhci@3440000")
	if err != nil {
	    log.Fatal(err)
	}
	sd.FindProperty("status").SetValue(`"okay"`)
	err = dts.WriteFile("board_new.dts", tree)

# Document Model

A Tree holds the root node ("/") and any top-level overlay nodes that follow
it. Each Node keeps its properties and children in source order. A Property
value is kept verbatim, quotes and angle brackets included; a nil value is a
flag property such as `wakeup-source;`.

Lookups are exact and single-level:

	chosen := tree.Root.FindChild("chosen")     // nil when absent
	args := chosen.FindProperty("bootargs")     // nil when absent
	ep, err := tree.Root.Lookup("cam_i2cmux", "i2c@0", "ports")

# Output

Format renders the canonical layout: tab indentation, a blank line before the
first child and between children, and the /dts-v1/; header before the root.
Parsing the output of Format yields an equal tree.

# Boot Patching

PatchBoot runs the full board workflow: it reads extlinux.conf, decompiles
the default entry's device tree blob with dtc, applies a patch policy,
recompiles, and adds a "patched_" boot entry:

	report, err := dts.PatchBoot(ctx, dts.PatchBootOptions{
	    Policy: dts.DefaultPolicy(),
	})

Set DryRun to stop after the policy has been applied and inspect the
rendered source without touching /boot.

# Error Handling

Errors carry a kind from pkg/types and match with errors.Is:

	if errors.Is(err, types.ErrMalformed) { ... }  // unbalanced or unparseable text
	if errors.Is(err, types.ErrNotFound) { ... }   // missing node, property or entry
	if errors.Is(err, types.ErrLimit) { ... }      // structural limits exceeded
	if errors.Is(err, types.ErrExternal) { ... }   // dtc failed
*/
package dts
