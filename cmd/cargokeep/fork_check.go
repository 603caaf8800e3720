package main

import (
	"os"

	"github.com/cargokeep/cargokeep/internal/cargo"
	"github.com/cargokeep/cargokeep/internal/common/output"
	"github.com/spf13/cobra"
)

var forkCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare vendored forks with their upstream crates",
	Long: `Read each tracked fork's Cargo.toml and compare its version
against the latest version published on the crate registry.

Versions are compared as opaque strings; any difference is reported as
an available update. A fork whose latest version cannot be determined
produces a warning, not a failure.`,
	Run: runForkCheck,
}

func init() {
	forkCmd.AddCommand(forkCheckCmd)
}

func runForkCheck(cmd *cobra.Command, args []string) {
	cfg, projectPath := loadConfigOrExit()

	cg := cargo.NewRunner(projectPath, cfg.Commands.Cargo)
	checker := buildChecker(cfg, projectPath, cg)

	results, err := checker.CheckAll()
	if err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	printCheckResults(results)
}
