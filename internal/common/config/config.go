package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrProjectPathNotFound = errors.New("project path does not exist")
	ErrForkPathNotSet      = errors.New("fork path is not configured")
	ErrForkPackageNotSet   = errors.New("fork package name is not configured")
)

// Config represents the application configuration
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Fork     ForkConfig     `yaml:"fork"`
	Commands CommandsConfig `yaml:"commands"`
	Registry RegistryConfig `yaml:"registry"`
}

// ProjectConfig holds settings for the Rust project being maintained
type ProjectConfig struct {
	Path string `yaml:"path"` // Project root; subprocess commands run here
}

// ForkConfig identifies the vendored fork tracked for version drift
type ForkConfig struct {
	Path    string `yaml:"path"`    // Fork directory, relative to the project root
	Package string `yaml:"package"` // Name of the upstream crate on the registry
}

// CommandsConfig allows overriding the external command binaries
type CommandsConfig struct {
	Rustup string `yaml:"rustup"`
	Cargo  string `yaml:"cargo"`
}

// RegistryConfig holds registry API settings
type RegistryConfig struct {
	// APIFallback enables querying the crates.io API when cargo search
	// yields no usable version. Off by default.
	APIFallback bool `yaml:"api_fallback"`
}

// DefaultConfig returns a configuration with the built-in defaults.
// The fork defaults track the twitch-irc crate vendored as twitch-irc_local.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Path: ".",
		},
		Fork: ForkConfig{
			Path:    "twitch-irc_local",
			Package: "twitch-irc",
		},
		Commands: CommandsConfig{
			Rustup: "rustup",
			Cargo:  "cargo",
		},
		Registry: RegistryConfig{
			APIFallback: false,
		},
	}
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/cargokeep/config.yaml (XDG standard - priority)
// 2. ~/.cargokeep/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "cargokeep", "config.yaml"),
		filepath.Join(home, ".cargokeep", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path.
// Returns the default path if no config file exists yet.
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	// No config exists, return default (XDG) path for creation
	return paths[0], nil
}

// Load reads configuration from the first available config file.
// Priority: ~/.config/cargokeep/config.yaml > ~/.cargokeep/config.yaml
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path.
// A missing file is created with the defaults so a bare run needs no setup.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if saveErr := cfg.SaveTo(path); saveErr != nil {
				return nil, saveErr
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills in zero values left by a partial config file
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Project.Path == "" {
		c.Project.Path = defaults.Project.Path
	}
	if c.Commands.Rustup == "" {
		c.Commands.Rustup = defaults.Commands.Rustup
	}
	if c.Commands.Cargo == "" {
		c.Commands.Cargo = defaults.Commands.Cargo
	}
}

// Save writes configuration to the default config file
func (c *Config) Save() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes configuration to a specific file path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetProjectPath returns the validated project root path.
// A leading ~ is expanded against the user's home directory.
func (c *Config) GetProjectPath() (string, error) {
	path := c.Project.Path
	if path == "" {
		path = "."
	}

	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrProjectPathNotFound
		}
		return "", err
	}
	if !info.IsDir() {
		return "", ErrProjectPathNotFound
	}

	return path, nil
}

// GetFork returns the configured fork path and package name
func (c *Config) GetFork() (path, pkg string, err error) {
	if c.Fork.Path == "" {
		return "", "", ErrForkPathNotSet
	}
	if c.Fork.Package == "" {
		return "", "", ErrForkPackageNotSet
	}
	return c.Fork.Path, c.Fork.Package, nil
}
