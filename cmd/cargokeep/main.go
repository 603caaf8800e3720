package main

import (
	"fmt"
	"os"

	"github.com/cargokeep/cargokeep/internal/common/logger"
	"github.com/cargokeep/cargokeep/internal/common/output"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	logFile bool
)

var rootCmd = &cobra.Command{
	Use:   "cargokeep",
	Short: "Routine maintenance for a Rust project with a vendored fork",
	Long: `cargokeep automates routine maintenance for a Rust project:
it updates the toolchain, refreshes the dependency lockfile, and
compares locally vendored forks against their upstream crates.

Run with no arguments to perform the full sequence.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
		if logFile {
			if err := logger.EnableFileLogging(); err != nil {
				logger.Warn("file logging unavailable: %v", err)
			}
		}
	},
	Run: runMaintain,
}

var forkCmd = &cobra.Command{
	Use:   "fork",
	Short: "Manage vendored fork tracking",
	Long:  `Commands for tracking locally vendored forks against the versions published on the crate registry.`,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logFile, "log-file", false, "Also log to the state directory")

	rootCmd.AddCommand(forkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
