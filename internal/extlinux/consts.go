package extlinux

const (
	// ============================================================================
	// Global Directives
	// ============================================================================

	// KeyTimeout sets the boot menu timeout in tenths of a second
	KeyTimeout = "TIMEOUT"

	// KeyDefault names the label booted when the menu times out
	KeyDefault = "DEFAULT"

	// KeyMenuTitle is the boot menu heading
	KeyMenuTitle = "MENU TITLE"

	// ============================================================================
	// Entry Directives
	// ============================================================================

	// KeyLabel starts a new entry; it must begin the line
	KeyLabel = "LABEL"

	// KeyMenuLabel is the text shown for an entry
	KeyMenuLabel = "MENU LABEL"

	// KeyLinux is the kernel image path
	KeyLinux = "LINUX"

	// KeyFDT is the device tree blob path
	KeyFDT = "FDT"

	// KeyInitrd is the initial ramdisk path
	KeyInitrd = "INITRD"

	// KeyAppend is the kernel command line
	KeyAppend = "APPEND"

	// CommentPrefix marks a comment line
	CommentPrefix = "#"

	// ============================================================================
	// Defaults
	// ============================================================================

	// DefaultPath is where L4T installs its boot configuration
	DefaultPath = "/boot/extlinux/extlinux.conf"

	// PatchedPrefix is prepended to the label and menu label of generated entries
	PatchedPrefix = "patched_"
)
