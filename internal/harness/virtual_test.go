// SPDX-License-Identifier: MPL-2.0

package harness

import (
	"bytes"
	"context"
	"testing"
)

// TestVirtualRunner_ExitCode verifies exit status propagation from the
// embedded interpreter.
func TestVirtualRunner_ExitCode(t *testing.T) {
	t.Parallel()

	runner := NewVirtualRunner("exit 4")
	res := runner.Run(context.Background(), map[string]string{})

	if res.Error != nil {
		t.Fatalf("Run() unexpected error: %v", res.Error)
	}
	if res.ExitCode != 4 {
		t.Errorf("ExitCode = %d, want 4", res.ExitCode)
	}
}

// TestVirtualRunner_EnvVisible verifies that the trial environment is
// visible to the interpreted command.
func TestVirtualRunner_EnvVisible(t *testing.T) {
	t.Parallel()

	runner := NewVirtualRunner(`exit "$` + EnvStoreRetval + `"`)
	res := runner.Run(context.Background(), map[string]string{EnvStoreRetval: "5"})

	if res.Error != nil {
		t.Fatalf("Run() unexpected error: %v", res.Error)
	}
	if res.ExitCode != 5 {
		t.Errorf("ExitCode = %d, want 5", res.ExitCode)
	}
}

// TestVirtualRunner_CapturesOutput verifies stdout wiring.
func TestVirtualRunner_CapturesOutput(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	runner := NewVirtualRunner("echo hi")
	runner.Stdout = &stdout

	res := runner.Run(context.Background(), map[string]string{})
	if res.Error != nil {
		t.Fatalf("Run() unexpected error: %v", res.Error)
	}
	if got := stdout.String(); got != "hi\n" {
		t.Errorf("stdout = %q, want %q", got, "hi\n")
	}
}

// TestVirtualRunner_Validate verifies syntax checking without execution.
func TestVirtualRunner_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{name: "valid command", command: "echo ok", wantErr: false},
		{name: "empty command", command: "   ", wantErr: true},
		{name: "syntax error", command: "if true; then", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewVirtualRunner(tt.command).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestVirtualRunner_NilContext verifies Run tolerates a nil context.
func TestVirtualRunner_NilContext(t *testing.T) {
	t.Parallel()

	res := NewVirtualRunner("true").Run(nil, map[string]string{}) //nolint:staticcheck // nil context is the case under test
	if res.Error != nil {
		t.Fatalf("Run() unexpected error: %v", res.Error)
	}
	if !res.ExitCode.IsSuccess() {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
}
