// Package fork compares locally vendored forks against the versions
// published on the crate registry.
package fork

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cargokeep/cargokeep/internal/cargo"
	"github.com/cargokeep/cargokeep/internal/manifest"
	"github.com/cargokeep/cargokeep/internal/registry"
)

var (
	// ErrManifestNotFound is returned when a fork's Cargo.toml is missing
	ErrManifestNotFound = errors.New("fork manifest not found")
	// ErrNoForks is returned when a checker is built with nothing to check
	ErrNoForks = errors.New("no forks configured")
)

// Fork identifies a vendored fork tracked for version drift
type Fork struct {
	// Package is the upstream crate name on the registry
	Package string
	// Path is the fork directory, relative to the project root
	Path string
}

// CheckResult represents the outcome of checking a single fork.
type CheckResult struct {
	// Package is the upstream crate name
	Package string
	// ManifestPath is the fork manifest that was read
	ManifestPath string
	// LocalVersion is the version declared in the fork manifest.
	// Empty when the manifest has no version line; that is not an error.
	LocalVersion string
	// LatestVersion is the version published on the registry.
	// Empty when it could not be determined; the check still succeeds.
	LatestVersion string
	// HasUpdate is true if the published version differs from the local one.
	// Versions are compared as opaque strings, no semver ordering.
	HasUpdate bool
	// FromAPI is true if LatestVersion came from the registry API fallback
	FromAPI bool
}

// Status returns a display status for the result
func (r CheckResult) Status() string {
	switch {
	case r.LatestVersion == "":
		return "Unknown"
	case r.HasUpdate:
		return "Outdated"
	default:
		return "UpToDate"
	}
}

// Checker compares vendored forks against their upstream crates.
type Checker struct {
	projectPath string
	forks       []Fork
	runner      cargo.Executor
	api         *registry.Client
	apiTimeout  time.Duration
}

// Option is a functional option for configuring Checker
type Option func(*Checker)

// WithAPIFallback enables the registry API fallback using the given client
func WithAPIFallback(client *registry.Client) Option {
	return func(c *Checker) {
		c.api = client
	}
}

// NewChecker creates a checker for the given forks. Search queries go
// through the provided cargo executor; manifests are resolved relative
// to projectPath.
func NewChecker(projectPath string, forks []Fork, runner cargo.Executor, opts ...Option) *Checker {
	checker := &Checker{
		projectPath: projectPath,
		forks:       forks,
		runner:      runner,
		apiTimeout:  30 * time.Second,
	}

	for _, opt := range opts {
		opt(checker)
	}

	return checker
}

// CheckAll checks every configured fork in order. A missing fork
// manifest is fatal and stops the run; results already produced are
// returned alongside the error.
func (c *Checker) CheckAll() ([]CheckResult, error) {
	if len(c.forks) == 0 {
		return nil, ErrNoForks
	}

	results := make([]CheckResult, 0, len(c.forks))
	for _, f := range c.forks {
		result, err := c.Check(f)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Check checks a single fork against the registry.
func (c *Checker) Check(f Fork) (CheckResult, error) {
	result := CheckResult{
		Package:      f.Package,
		ManifestPath: filepath.Join(c.projectPath, f.Path, manifest.FileName),
	}

	// The manifest must exist; there is no fallback path search
	local, err := manifest.Version(result.ManifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return result, fmt.Errorf("%w: %s", ErrManifestNotFound, result.ManifestPath)
		}
		return result, fmt.Errorf("reading fork manifest: %w", err)
	}
	result.LocalVersion = local

	// A failed or empty search is not fatal, the latest version just
	// stays unknown
	output, err := c.runner.Search(f.Package)
	if err == nil {
		result.LatestVersion = cargo.ParseSearchOutput(output, f.Package)
	}

	if result.LatestVersion == "" && c.api != nil {
		ctx, cancel := context.WithTimeout(context.Background(), c.apiTimeout)
		latest, apiErr := c.api.LatestVersion(ctx, f.Package)
		cancel()
		if apiErr == nil && latest != "" {
			result.LatestVersion = latest
			result.FromAPI = true
		}
	}

	if result.LatestVersion != "" {
		result.HasUpdate = result.LatestVersion != result.LocalVersion
	}

	return result, nil
}
