// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "read input file"},
			expected: "failed to read input file",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "read input file", Resource: "./main.go"},
			expected: "failed to read input file: ./main.go",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "load configuration", Cause: errors.New("syntax error at line 5")},
			expected: "failed to load configuration: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "write output file",
				Resource:  "./out.go",
				Cause:     errors.New("disk full"),
			},
			expected: "failed to write output file: ./out.go: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{Operation: "test", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "test"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions",
			err: &ActionableError{
				Operation:   "read input file",
				Resource:    "./main.go",
				Suggestions: []string{"Check the --in path", "Check file permissions"},
			},
			contains: []string{"failed to read input file: ./main.go", "• Check the --in path", "• Check file permissions"},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to load configuration: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "apply header",
				Cause: &ActionableError{
					Operation: "read input file",
					Cause:     errors.New("file not found"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to read input file: file not found",
				"2. file not found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(tt.verbose)

			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("permission denied")
	ae := NewErrorContext().
		WithOperation("write output file").
		WithResource("/etc/out.go").
		WithSuggestion("Check permissions").
		WithSuggestion("Use --out").
		WithIssue(PermissionDeniedId).
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "write output file" || ae.Resource != "/etc/out.go" {
		t.Errorf("unexpected fields: %+v", ae)
	}
	if len(ae.Suggestions) != 2 || !ae.HasSuggestions() {
		t.Errorf("Suggestions = %v, want 2 entries", ae.Suggestions)
	}
	if ae.Issue != PermissionDeniedId {
		t.Errorf("Issue = %d, want %d", ae.Issue, PermissionDeniedId)
	}
	if !errors.Is(ae, cause) {
		t.Error("built error should wrap the cause")
	}

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return a nil interface")
	}
}

func TestWrapWithContext(t *testing.T) {
	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}

	cause := errors.New("boom")
	ae := WrapWithContext(cause, "read input file", "a.go")
	if ae.Error() != "failed to read input file: a.go: boom" {
		t.Errorf("Error() = %q", ae.Error())
	}
}
