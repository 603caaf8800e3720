package rustup

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

var (
	ErrRustupCommand = errors.New("rustup command failed")
)

// Runner executes rustup commands
type Runner struct {
	binary string
}

// NewRunner creates a new Runner for the given rustup binary.
// An empty binary defaults to "rustup" resolved from PATH.
func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = "rustup"
	}
	return &Runner{
		binary: binary,
	}
}

// Binary returns the rustup binary the Runner invokes
func (r *Runner) Binary() string {
	return r.binary
}

// runCommand executes a rustup command and returns stdout, stderr, and any error
func (r *Runner) runCommand(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(r.binary, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err != nil {
		// Wrap the error with stderr for context
		if stderr != "" {
			err = errors.Join(ErrRustupCommand, errors.New(strings.TrimSpace(stderr)))
		}
	}

	return stdout, stderr, err
}

// Update runs `rustup update` with no arguments, blocking until the
// subprocess exits. No retries are attempted.
func (r *Runner) Update() error {
	_, _, err := r.runCommand("update")
	return err
}
