package fork

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

var (
	// ErrForksConfigNotFound is returned when the project has no forks.toml
	ErrForksConfigNotFound = errors.New("forks.toml not found in project")
	// ErrMissingForkPath is returned when a fork entry has no path
	ErrMissingForkPath = errors.New("missing required field: path")
)

// forkEntry is the TOML representation of a single fork declaration
type forkEntry struct {
	// Path is the fork directory, relative to the project root
	Path string `toml:"path"`
}

// forksConfigFile matches the forks.toml structure:
//
//	[forks."twitch-irc"]
//	path = "twitch-irc_local"
type forksConfigFile struct {
	Forks map[string]forkEntry `toml:"forks"`
}

// ForksConfigPath returns the forks.toml path inside a project
func ForksConfigPath(projectPath string) string {
	return filepath.Join(projectPath, ".cargokeep", "forks.toml")
}

// LoadForksConfig loads the optional multi-fork declaration from
// project/.cargokeep/forks.toml. Forks are returned sorted by package
// name so check order is stable.
func LoadForksConfig(projectPath string) ([]Fork, error) {
	configPath := ForksConfigPath(projectPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, ErrForksConfigNotFound
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read forks.toml: %w", err)
	}

	var fileConfig forksConfigFile
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("failed to parse forks.toml: %w", err)
	}

	forks := make([]Fork, 0, len(fileConfig.Forks))
	for pkg, entry := range fileConfig.Forks {
		if entry.Path == "" {
			return nil, fmt.Errorf("fork %s: %w", pkg, ErrMissingForkPath)
		}
		forks = append(forks, Fork{
			Package: pkg,
			Path:    entry.Path,
		})
	}

	sort.Slice(forks, func(i, j int) bool {
		return forks[i].Package < forks[j].Package
	})

	return forks, nil
}
