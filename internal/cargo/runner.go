package cargo

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

var (
	ErrCargoCommand = errors.New("cargo command failed")
)

// Runner executes cargo commands in a specific working directory
type Runner struct {
	workDir string
	binary  string
}

// NewRunner creates a new Runner for the specified project directory.
// An empty binary defaults to "cargo" resolved from PATH.
func NewRunner(workDir, binary string) *Runner {
	if binary == "" {
		binary = "cargo"
	}
	return &Runner{
		workDir: workDir,
		binary:  binary,
	}
}

// WorkDir returns the working directory of the Runner
func (r *Runner) WorkDir() string {
	return r.workDir
}

// runCommand executes a cargo command and returns stdout, stderr, and any error
func (r *Runner) runCommand(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(r.binary, args...)
	cmd.Dir = r.workDir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err != nil {
		// Wrap the error with stderr for context
		if stderr != "" {
			err = errors.Join(ErrCargoCommand, errors.New(strings.TrimSpace(stderr)))
		}
	}

	return stdout, stderr, err
}

// Update runs `cargo update` in the project directory. Version pins
// declared in the project manifest are honored by cargo itself; the
// pin is external state this command merely respects.
func (r *Runner) Update() error {
	_, _, err := r.runCommand("update")
	return err
}

// Search runs `cargo search` for the named crate and returns the raw
// plain-text listing from stdout.
func (r *Runner) Search(pkg string) (string, error) {
	stdout, _, err := r.runCommand("search", pkg)
	if err != nil {
		return "", err
	}
	return stdout, nil
}
