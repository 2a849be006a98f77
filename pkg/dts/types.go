package dts

import (
	"github.com/joshuapare/dtskit/internal/dtc"
	"github.com/joshuapare/dtskit/internal/extlinux"
	"github.com/joshuapare/dtskit/internal/patch"
	"github.com/joshuapare/dtskit/pkg/ast"
)

// Re-export document types so users only need to import pkg/dts.
type (
	Tree     = ast.Tree
	Node     = ast.Node
	Property = ast.Property
)

// Limits bounds the structure of a parsed document.
type Limits = ast.Limits

// Limit presets.
var (
	DefaultLimits = ast.DefaultLimits
	StrictLimits  = ast.StrictLimits
)

// Boot configuration types.
type (
	BootConfig = extlinux.Config
	BootEntry  = extlinux.Entry
)

// Patch policy types.
type (
	Policy      = patch.Policy
	Patch       = patch.Patch
	Edit        = patch.Edit
	PatchReport = patch.Report
	PatchChange = patch.Change
)

// Compiler converts between .dtb and .dts. ExecCompiler runs dtc.
type (
	Compiler     = dtc.Compiler
	ExecCompiler = dtc.Exec
	BlobPaths    = dtc.Paths
)

// Policy constructors.
var (
	LoadPolicy    = patch.Load
	ParsePolicy   = patch.Parse
	DefaultPolicy = patch.Default
)

// ParseBootConfig parses extlinux.conf content.
var ParseBootConfig = extlinux.Parse
