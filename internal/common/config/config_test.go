package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cargokeep", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Fork.Path != "twitch-irc_local" {
		t.Errorf("expected default fork path twitch-irc_local, got %q", cfg.Fork.Path)
	}
	if cfg.Fork.Package != "twitch-irc" {
		t.Errorf("expected default fork package twitch-irc, got %q", cfg.Fork.Package)
	}
	if cfg.Commands.Rustup != "rustup" || cfg.Commands.Cargo != "cargo" {
		t.Errorf("expected default command binaries, got %+v", cfg.Commands)
	}
	if cfg.Registry.APIFallback {
		t.Error("API fallback must default to off")
	}

	// The defaults should have been written for the next run
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
}

func TestLoadFromFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `project:
  path: /srv/chatbot
fork:
  path: vendor/twitch-irc_local
  package: twitch-irc
commands:
  rustup: /opt/rust/bin/rustup
  cargo: /opt/rust/bin/cargo
registry:
  api_fallback: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Project.Path != "/srv/chatbot" {
		t.Errorf("expected project path /srv/chatbot, got %q", cfg.Project.Path)
	}
	if cfg.Fork.Path != "vendor/twitch-irc_local" {
		t.Errorf("expected fork path vendor/twitch-irc_local, got %q", cfg.Fork.Path)
	}
	if cfg.Commands.Rustup != "/opt/rust/bin/rustup" {
		t.Errorf("expected rustup override, got %q", cfg.Commands.Rustup)
	}
	if !cfg.Registry.APIFallback {
		t.Error("expected API fallback enabled")
	}
}

func TestLoadFromPartialConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `fork:
  path: my_fork
  package: mycrate
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Project.Path != "." {
		t.Errorf("expected default project path, got %q", cfg.Project.Path)
	}
	if cfg.Commands.Rustup != "rustup" || cfg.Commands.Cargo != "cargo" {
		t.Errorf("expected default command binaries, got %+v", cfg.Commands)
	}
	if cfg.Fork.Path != "my_fork" || cfg.Fork.Package != "mycrate" {
		t.Errorf("expected fork settings preserved, got %+v", cfg.Fork)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Fork.Package = "serde"
	cfg.Fork.Path = "serde_local"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if reloaded.Fork.Package != "serde" || reloaded.Fork.Path != "serde_local" {
		t.Errorf("expected saved fork settings, got %+v", reloaded.Fork)
	}
}

func TestGetProjectPath(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Project.Path = dir

	path, err := cfg.GetProjectPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != dir {
		t.Errorf("expected %q, got %q", dir, path)
	}
}

func TestGetProjectPathMissing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Project.Path = filepath.Join(t.TempDir(), "does-not-exist")

	if _, err := cfg.GetProjectPath(); !errors.Is(err, ErrProjectPathNotFound) {
		t.Errorf("expected ErrProjectPathNotFound, got %v", err)
	}
}

func TestGetFork(t *testing.T) {
	cfg := DefaultConfig()

	path, pkg, err := cfg.GetFork()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "twitch-irc_local" || pkg != "twitch-irc" {
		t.Errorf("expected default fork, got %q/%q", path, pkg)
	}

	cfg.Fork.Path = ""
	if _, _, err := cfg.GetFork(); !errors.Is(err, ErrForkPathNotSet) {
		t.Errorf("expected ErrForkPathNotSet, got %v", err)
	}

	cfg.Fork.Path = "x"
	cfg.Fork.Package = ""
	if _, _, err := cfg.GetFork(); !errors.Is(err, ErrForkPackageNotSet) {
		t.Errorf("expected ErrForkPackageNotSet, got %v", err)
	}
}
