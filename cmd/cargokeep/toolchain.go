package main

import (
	"os"

	"github.com/cargokeep/cargokeep/internal/common/output"
	"github.com/cargokeep/cargokeep/internal/rustup"
	"github.com/spf13/cobra"
)

var toolchainCmd = &cobra.Command{
	Use:   "toolchain",
	Short: "Update the Rust toolchain",
	Long:  `Run rustup update to bring the installed toolchains up to date.`,
	Run:   runToolchain,
}

func init() {
	rootCmd.AddCommand(toolchainCmd)
}

func runToolchain(cmd *cobra.Command, args []string) {
	cfg, _ := loadConfigOrExit()

	rust := rustup.NewRunner(cfg.Commands.Rustup)
	if err := rust.Update(); err != nil {
		output.PrintError("updating toolchain: %v", err)
		os.Exit(1)
	}

	output.PrintSuccess("Toolchain updated")
}
