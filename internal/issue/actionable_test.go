// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

// TestActionableError_Error verifies the concise message format.
func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "run trial"},
			want: "failed to run trial",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "./config.toml"},
			want: "failed to load configuration: ./config.toml",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "locate test command",
				Resource:  "./test.js",
				Cause:     errors.New("no such file"),
			},
			want: "failed to locate test command: ./test.js: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestErrorContext_Build verifies the fluent builder.
func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("run trial").
		WithResource("./test.js").
		WithSuggestion("Build the test program first").
		WithSuggestion("Pass --command").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() = nil")
	}
	if err.Operation != "run trial" || err.Resource != "./test.js" {
		t.Errorf("Build() = %+v", err)
	}
	if len(err.Suggestions) != 2 {
		t.Errorf("len(Suggestions) = %d, want 2", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

// TestErrorContext_BuildRequiresOperation verifies nil return without an
// operation.
func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() = %v, want nil", got)
	}
}

// TestActionableError_Format verifies suggestion bullets and the verbose
// error chain.
func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the TOML syntax").
		Wrap(inner).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "• Check the TOML syntax") {
		t.Errorf("Format(false) missing suggestion bullet:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) includes error chain:\n%s", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") || !strings.Contains(long, "1. inner") {
		t.Errorf("Format(true) missing error chain:\n%s", long)
	}
}

// TestWrapWithOperation verifies the shorthand wrapper.
func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "run trial")
	if err == nil || !errors.Is(err, cause) {
		t.Errorf("WrapWithOperation() = %v", err)
	}
}
