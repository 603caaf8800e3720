package main

import (
	"os"

	"github.com/cargokeep/cargokeep/internal/cargo"
	"github.com/cargokeep/cargokeep/internal/common/output"
	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Refresh the dependency lockfile",
	Long: `Run cargo update in the project directory. Version pins declared
in the project manifest are honored as-is.`,
	Run: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) {
	cfg, projectPath := loadConfigOrExit()

	cg := cargo.NewRunner(projectPath, cfg.Commands.Cargo)
	if err := cg.Update(); err != nil {
		output.PrintError("updating dependencies: %v", err)
		os.Exit(1)
	}

	output.PrintSuccess("Dependency lockfile refreshed")
}
