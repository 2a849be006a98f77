package main

import (
	"errors"
	"testing"

	"github.com/joshuapare/dtskit/pkg/types"
)

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		property       string
		raw            bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "get status",
			path:        "/sdhci@3440000",
			property:    "status",
			wantContain: []string{`status = "disabled";`},
		},
		{
			name:           "get raw",
			path:           "/chosen",
			property:       "bootargs",
			raw:            true,
			wantContain:    []string{`"console=ttyTCU0,115200"`},
			wantNotContain: []string{"bootargs"},
		},
		{
			name:        "get flag",
			path:        "/gpio-keys",
			property:    "wakeup-source",
			wantContain: []string{"wakeup-source;"},
		},
		{
			name:        "get root property as JSON",
			path:        "/",
			property:    "model",
			wantJSON:    true,
			wantContain: []string{`"key": "model"`},
		},
		{
			name:     "nonexistent node",
			path:     "/gpio-keys/reset",
			property: "label",
			wantErr:  true,
		},
		{
			name:     "nonexistent property",
			path:     "/chosen",
			property: "stdout-path",
			wantErr:  true,
		},
	}

	dtsPath := writeTestFile(t, "board.dts", boardDTS)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			resetFlags()
			jsonOut = tt.wantJSON
			getRaw = tt.raw

			args := []string{dtsPath, tt.path, tt.property}

			output, err := captureOutput(t, func() error {
				return runGet(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runGet() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.wantErr && !errors.Is(err, types.ErrNotFound) {
				t.Errorf("runGet() error = %v, want a not-found error", err)
			}

			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestGetCommand_MalformedFile(t *testing.T) {
	resetFlags()
	dtsPath := writeTestFile(t, "bad.dts", "/ {\n\tstatus = \"okay\";\n")

	_, err := captureOutput(t, func() error {
		return runGet([]string{dtsPath, "/", "status"})
	})
	if !errors.Is(err, types.ErrMalformed) {
		t.Fatalf("runGet() error = %v, want malformed", err)
	}
}
