// SPDX-License-Identifier: MPL-2.0

package harness

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

type (
	// Driver runs every trial of a matrix against a Runner, strictly in
	// enumeration order, one child process at a time. The first trial
	// that exits non-zero halts the whole run.
	Driver struct {
		Matrix Matrix
		Runner Runner
		Env    *EnvBuilder
		// Logger receives per-trial progress. When nil, logging is off.
		Logger *log.Logger
	}

	// TrialError reports the first failing trial. The password axis is
	// deliberately left out: the mock returns the lookup value verbatim,
	// so which password was active never explains a failure.
	TrialError struct {
		ClearRetval string
		StoreRetval string
		Code        ExitCode
	}
)

// Error implements the error interface.
func (e *TrialError) Error() string {
	return fmt.Sprintf("test with clear_retval=%s and store_retval=%s failed with return code %d",
		e.ClearRetval, e.StoreRetval, e.Code)
}

// Run executes all trials sequentially. It returns nil when every trial
// exits 0, a *TrialError on the first non-zero exit, or the runner's
// error when an invocation could not be started at all. Trials after a
// failure are never invoked.
func (d *Driver) Run(ctx context.Context) error {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for i, tr := range d.Matrix.Trials() {
		logger.Debug("running trial",
			"trial", i+1,
			"password_set", tr.Password.Present,
			"clear_retval", tr.ClearRetval,
			"store_retval", tr.StoreRetval,
		)

		env := d.Env.Build(tr)
		res := d.Runner.Run(ctx, env)
		if res.Error != nil {
			return res.Error
		}
		if !res.ExitCode.IsSuccess() {
			return &TrialError{
				ClearRetval: tr.ClearRetval,
				StoreRetval: tr.StoreRetval,
				Code:        res.ExitCode,
			}
		}
	}

	return nil
}
