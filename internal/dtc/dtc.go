// Package dtc drives the device tree compiler to convert between binary
// blobs (.dtb) and source text (.dts).
package dtc

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/joshuapare/dtskit/pkg/types"
)

const (
	// DefaultBinary is looked up on PATH when Exec.Binary is empty.
	DefaultBinary = "dtc"

	// DefaultTimeout bounds a single compiler run.
	DefaultTimeout = 60 * time.Second

	// missingFileMarker in compiler output means an input could not be read,
	// even when the process exits zero.
	missingFileMarker = "No such file or directory"
)

// Compiler converts between blob and source form.
type Compiler interface {
	Decompile(ctx context.Context, dtbPath, dtsPath string) error
	Compile(ctx context.Context, dtsPath, dtbPath string) error
}

// Exec runs an external dtc binary.
type Exec struct {
	Binary  string
	Timeout time.Duration
}

var _ Compiler = (*Exec)(nil)

// Available reports whether the configured binary can be found.
func (e *Exec) Available() bool {
	_, err := exec.LookPath(e.binary())
	return err == nil
}

// Decompile runs dtc -I dtb -O dts dtbPath -o dtsPath.
func (e *Exec) Decompile(ctx context.Context, dtbPath, dtsPath string) error {
	return e.run(ctx, "decompile", "-I", "dtb", "-O", "dts", dtbPath, "-o", dtsPath)
}

// Compile runs dtc -I dts -O dtb dtsPath -o dtbPath.
func (e *Exec) Compile(ctx context.Context, dtsPath, dtbPath string) error {
	return e.run(ctx, "compile", "-I", "dts", "-O", "dtb", dtsPath, "-o", dtbPath)
}

func (e *Exec) binary() string {
	if e.Binary == "" {
		return DefaultBinary
	}
	return e.Binary
}

func (e *Exec) run(ctx context.Context, op string, args ...string) error {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary(), args...)
	output, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(output))

	if err != nil {
		return &types.Error{
			Kind: types.ErrKindExternal,
			Msg:  fmt.Sprintf("dtc: %s failed: %s", op, describe(out)),
			Err:  err,
		}
	}
	if strings.Contains(out, missingFileMarker) {
		return &types.Error{
			Kind: types.ErrKindExternal,
			Msg:  fmt.Sprintf("dtc: %s failed: %s", op, out),
		}
	}
	return nil
}

func describe(out string) string {
	if out == "" {
		return "no output"
	}
	return out
}
