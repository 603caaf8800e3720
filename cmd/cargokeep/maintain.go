package main

import (
	"errors"
	"os"

	"github.com/cargokeep/cargokeep/internal/cargo"
	"github.com/cargokeep/cargokeep/internal/common/config"
	"github.com/cargokeep/cargokeep/internal/common/logger"
	"github.com/cargokeep/cargokeep/internal/common/output"
	"github.com/cargokeep/cargokeep/internal/fork"
	"github.com/cargokeep/cargokeep/internal/maintain"
	"github.com/cargokeep/cargokeep/internal/registry"
	"github.com/cargokeep/cargokeep/internal/rustup"
	"github.com/spf13/cobra"
)

func runMaintain(cmd *cobra.Command, args []string) {
	cfg, projectPath := loadConfigOrExit()

	rust := rustup.NewRunner(cfg.Commands.Rustup)
	cg := cargo.NewRunner(projectPath, cfg.Commands.Cargo)
	checker := buildChecker(cfg, projectPath, cg)

	opts := maintain.Options{
		OnStepDone: func(step string) {
			switch step {
			case maintain.StepToolchain:
				output.PrintSuccess("Toolchain updated")
			case maintain.StepDependencies:
				output.PrintSuccess("Dependency lockfile refreshed")
			}
		},
	}

	results, err := maintain.Run(rust, cg, checker, opts)
	if err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	printCheckResults(results)
}

// loadConfigOrExit loads the configuration and resolves the project
// path, terminating the process on failure.
func loadConfigOrExit() (*config.Config, string) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	projectPath, err := cfg.GetProjectPath()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	return cfg, projectPath
}

// buildChecker assembles the fork checker from forks.toml when present,
// falling back to the single fork declared in the config file.
func buildChecker(cfg *config.Config, projectPath string, cg cargo.Executor) *fork.Checker {
	forks, err := fork.LoadForksConfig(projectPath)
	if err != nil {
		if !errors.Is(err, fork.ErrForksConfigNotFound) {
			logger.Error("%v", err)
			os.Exit(1)
		}

		path, pkg, err := cfg.GetFork()
		if err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
		forks = []fork.Fork{{Package: pkg, Path: path}}
	}

	var opts []fork.Option
	if cfg.Registry.APIFallback {
		opts = append(opts, fork.WithAPIFallback(registry.NewClient()))
	}

	return fork.NewChecker(projectPath, forks, cg, opts...)
}

// printCheckResults reports fork check outcomes. An unknown latest
// version is a warning, not a failure.
func printCheckResults(results []fork.CheckResult) {
	for _, r := range results {
		if r.LatestVersion == "" {
			output.PrintWarning("Could not determine the latest published version of %s",
				output.FormatPackage(r.Package))
			continue
		}

		logger.Info("%s: local %s, latest %s",
			output.FormatPackage(r.Package),
			output.FormatVersion(r.LocalVersion),
			output.FormatVersion(r.LatestVersion))

		if r.FromAPI {
			logger.Debug("%s: latest version resolved via registry API", r.Package)
		}

		if r.HasUpdate {
			output.PrintInfo("Update available for %s: %s -> %s",
				output.FormatPackage(r.Package),
				output.FormatVersion(r.LocalVersion),
				output.FormatVersion(r.LatestVersion))
		} else {
			output.PrintSuccess("%s is up to date", output.FormatPackage(r.Package))
		}
	}
}
