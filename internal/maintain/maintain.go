// Package maintain drives the full maintenance sequence: toolchain
// update, dependency lockfile refresh, fork drift check.
package maintain

import (
	"fmt"

	"github.com/cargokeep/cargokeep/internal/cargo"
	"github.com/cargokeep/cargokeep/internal/fork"
	"github.com/cargokeep/cargokeep/internal/rustup"
)

// Step names reported to the OnStepDone callback
const (
	StepToolchain    = "toolchain"
	StepDependencies = "dependencies"
)

// Options configures a maintenance run.
type Options struct {
	// OnStepDone is called after each successful step, before the next
	// one starts. Nil disables progress reporting.
	OnStepDone func(step string)
}

// Run performs the maintenance sequence top to bottom. The first
// failing step aborts the run; nothing after it executes. Fork check
// results are returned for the caller to report.
func Run(toolchain rustup.Executor, deps cargo.Executor, checker *fork.Checker, opts Options) ([]fork.CheckResult, error) {
	if err := toolchain.Update(); err != nil {
		return nil, fmt.Errorf("updating toolchain: %w", err)
	}
	notify(opts, StepToolchain)

	if err := deps.Update(); err != nil {
		return nil, fmt.Errorf("updating dependencies: %w", err)
	}
	notify(opts, StepDependencies)

	results, err := checker.CheckAll()
	if err != nil {
		return results, err
	}

	return results, nil
}

func notify(opts Options, step string) {
	if opts.OnStepDone != nil {
		opts.OnStepDone(step)
	}
}
