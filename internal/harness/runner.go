// SPDX-License-Identifier: MPL-2.0

package harness

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

type (
	// Runner executes the test command once with the given environment
	// and reports its exit code. Implementations block until the child
	// process exits.
	Runner interface {
		Run(ctx context.Context, env map[string]string) *Result
	}

	// Result contains the outcome of a single trial invocation.
	Result struct {
		// ExitCode is the child's exit status.
		ExitCode ExitCode
		// Error is set when the invocation itself failed (command not
		// found, permission denied). A non-zero exit from a process that
		// did run is reported through ExitCode alone.
		Error error
	}

	// ExecRunner invokes the test command directly through the OS,
	// with no arguments and no shell in between.
	ExecRunner struct {
		// Command is the path of the test executable.
		Command string
		// Stdout and Stderr receive the child's output. Nil discards.
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewExecRunner creates an ExecRunner for the given executable path.
func NewExecRunner(command string) *ExecRunner {
	return &ExecRunner{Command: command}
}

// Run invokes the command synchronously with the given environment.
func (r *ExecRunner) Run(ctx context.Context, env map[string]string) *Result {
	cmd := exec.CommandContext(ctx, r.Command)
	cmd.Env = EnvToSlice(env)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &Result{ExitCode: ExitCode(exitErr.ExitCode())}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to execute %s: %w", r.Command, err)}
	}

	return &Result{}
}
