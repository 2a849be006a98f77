package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	t.Setenv(envDTC, "")
	assert.Equal(t, "dtc", resolvePath("", envDTC, "dtc"))

	t.Setenv(envDTC, "/opt/dtc")
	assert.Equal(t, "/opt/dtc", resolvePath("", envDTC, "dtc"))
	assert.Equal(t, "/usr/bin/dtc", resolvePath("/usr/bin/dtc", envDTC, "dtc"))
}

func TestRootCommand_Version(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		rootCmd.SetArgs([]string{"version"})
		return rootCmd.Execute()
	})
	require.NoError(t, err)
	assert.Contains(t, output, "dtsctl dev")
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	resetFlags()
	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"--log-level", "loud", "version"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		logLevel = "info"
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
}
