package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/dtskit/internal/logger"
	"github.com/spf13/cobra"
)

const (
	envDTC      = "DTSCTL_DTC"
	envExtlinux = "DTSCTL_EXTLINUX"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	logLevel  string
	logFormat string
	logDir    string
)

var rootCmd = &cobra.Command{
	Use:   "dtsctl",
	Short: "Inspect and patch device tree source files",
	Long: `dtsctl reads, edits and reformats device tree source (.dts) files, and
patches the device tree of a Jetson boot entry in place: it decompiles the
blob named by extlinux.conf, applies a patch policy, recompiles it, and adds
a boot menu entry for the result.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write logs to a dated file in this directory")
}

// initLogging enables structured logs on stderr when --verbose or an
// explicit --log-level/--log-dir is given.
func initLogging(cmd *cobra.Command) error {
	flags := cmd.Flags()
	enabled := verbose || flags.Changed("log-level") || flags.Changed("log-dir")

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{
		Enabled: enabled && !quiet,
		Level:   level,
		Format:  logger.Format(logFormat),
		LogDir:  logDir,
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// resolvePath picks the flag value, then the environment, then the default.
func resolvePath(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}
