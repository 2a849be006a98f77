package extlinux

import (
	"bytes"
)

// RenderEntry formats e as an extlinux.conf block.
func RenderEntry(e Entry) string {
	var buf bytes.Buffer
	buf.WriteString(KeyLabel + " " + e.Label + "\n")
	writeField(&buf, KeyMenuLabel, e.MenuLabel)
	writeField(&buf, KeyLinux, e.Linux)
	writeField(&buf, KeyFDT, e.FDT)
	writeField(&buf, KeyInitrd, e.Initrd)
	writeField(&buf, KeyAppend, e.Append)
	return buf.String()
}

func writeField(buf *bytes.Buffer, key, value string) {
	buf.WriteString("\t" + key + " " + value + "\n")
}

// AppendEntry returns data with e appended after one blank line. data is
// not modified.
func AppendEntry(data []byte, e Entry) []byte {
	out := make([]byte, 0, len(data)+256)
	out = append(out, data...)
	if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	out = append(out, '\n')
	out = append(out, RenderEntry(e)...)
	return out
}

// PatchedEntry derives the menu entry that boots base with a patched
// device tree blob.
func PatchedEntry(base Entry, fdt string) Entry {
	return Entry{
		Label:     PatchedPrefix + base.Label,
		MenuLabel: PatchedPrefix + base.MenuLabel,
		Linux:     base.Linux,
		FDT:       fdt,
		Initrd:    base.Initrd,
		Append:    base.Append,
	}
}
