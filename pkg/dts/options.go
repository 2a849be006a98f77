package dts

import (
	"time"

	"github.com/joshuapare/dtskit/internal/dtstext"
	"github.com/joshuapare/dtskit/internal/extlinux"
)

// DefaultBootConfig is where L4T keeps extlinux.conf.
const DefaultBootConfig = extlinux.DefaultPath

// ParseOptions controls parsing.
type ParseOptions struct {
	// Limits bounds the parsed document.
	// If nil, DefaultLimits() is used.
	Limits *Limits
}

func (o *ParseOptions) internal() dtstext.ParseOptions {
	if o == nil || o.Limits == nil {
		return dtstext.DefaultParseOptions()
	}
	return dtstext.ParseOptions{Limits: *o.Limits}
}

// WriteOptions controls WriteFile.
type WriteOptions struct {
	// CreateBackup copies an existing target to <path>.backup first.
	CreateBackup bool

	// FullSync requests F_FULLFSYNC on macOS.
	FullSync bool

	// NoSync skips flushing to stable storage.
	NoSync bool
}

// PatchBootOptions controls PatchBoot.
type PatchBootOptions struct {
	// BootConfig is the extlinux.conf path.
	// Default: DefaultBootConfig
	BootConfig string

	// Label selects the entry to patch.
	// Default: the DEFAULT label of the boot configuration
	Label string

	// Policy lists the edits to apply.
	// Default: DefaultPolicy()
	Policy *Policy

	// Compiler converts between blob and source.
	// Default: &ExecCompiler{} (dtc on PATH)
	Compiler Compiler

	// CompilerTimeout bounds each dtc run when Compiler is nil.
	CompilerTimeout time.Duration

	// Limits bounds the decompiled document.
	// If nil, DefaultLimits() is used.
	Limits *Limits

	// DryRun decompiles into a scratch directory and stops after the policy
	// has been applied. Nothing under /boot is modified.
	DryRun bool

	// NoSync skips flushing written files. Meant for tests.
	NoSync bool
}

// PatchBootReport describes what PatchBoot did.
type PatchBootReport struct {
	Entry      BootEntry    `json:"entry"`
	Paths      BlobPaths    `json:"paths"`
	Backup     string       `json:"backup,omitempty"`
	Patch      *PatchReport `json:"patch"`
	NewEntry   BootEntry    `json:"new_entry"`
	EntryAdded bool         `json:"entry_added"`
	DryRun     bool         `json:"dry_run"`

	// Rendered is the patched source. Set only for dry runs.
	Rendered string `json:"-"`
}
