// SPDX-License-Identifier: MPL-2.0

package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner executes the test command through the embedded shell
// interpreter instead of the system loader. Useful when the command is
// a shell line rather than a bare executable path; the environment is
// passed through to any process the line spawns.
type VirtualRunner struct {
	// Command is the shell source to run for each trial.
	Command string
	// Stdout and Stderr receive the script's output. Nil discards.
	Stdout io.Writer
	Stderr io.Writer
}

// NewVirtualRunner creates a VirtualRunner for the given shell command line.
func NewVirtualRunner(command string) *VirtualRunner {
	return &VirtualRunner{Command: command}
}

// Validate parses the command line and reports syntax errors without
// running anything.
func (r *VirtualRunner) Validate() error {
	if strings.TrimSpace(r.Command) == "" {
		return fmt.Errorf("no command to execute")
	}
	_, err := syntax.NewParser().Parse(strings.NewReader(r.Command), "command")
	if err != nil {
		return fmt.Errorf("command syntax error: %w", err)
	}
	return nil
}

// Run executes the command line under the interpreter with the given
// environment, blocking until it completes.
func (r *VirtualRunner) Run(ctx context.Context, env map[string]string) *Result {
	prog, err := syntax.NewParser().Parse(strings.NewReader(r.Command), "command")
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to parse command: %w", err)}
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(EnvToSlice(env)...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &Result{ExitCode: ExitCode(exitStatus)}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("command execution failed: %w", err)}
	}

	return &Result{}
}
