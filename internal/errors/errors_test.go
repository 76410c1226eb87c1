// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "unknown workload"},
			expected: "unknown workload",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", -1, "--chunk-size"),
			expected: "invalid value -1 for flag --chunk-size",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestWrappingTypes_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("root cause")
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"StartupError", StartupError{Op: "resolve process", Cause: cause}, "startup: resolve process: root cause"},
		{"MetricsReadError", MetricsReadError{Metric: "cpu", Cause: cause}, "read cpu: root cause"},
		{"WorkloadError", WorkloadError{Workload: "io", Cause: cause}, "workload io: root cause"},
		{"CoordinationError", CoordinationError{Op: "join sampler", Cause: cause}, "coordination: join sampler: root cause"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, cause) {
				t.Error("errors.Is should find the cause in the chain")
			}
		})
	}
}

func TestWorkloadError_WrapsFilesystemErrors(t *testing.T) {
	t.Parallel()
	err := WorkloadError{Workload: "io", Cause: fmt.Errorf("open: %w", os.ErrNotExist)}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected os.ErrNotExist through WorkloadError")
	}
}

func TestPanicError(t *testing.T) {
	t.Parallel()
	err := PanicError{Value: "boom"}
	if err.Error() != "panic: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "workers", Message: "must be at least 1"}
	expected := `validation error for "workers": must be at least 1`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wraps with message", func(t *testing.T) {
		t.Parallel()
		err := WrapError(io.ErrUnexpectedEOF, "reading chunk %d", 3)
		if err.Error() != "reading chunk 3: unexpected EOF" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Error("wrapped error should match the original")
		}
	})
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	cause := errors.New("x")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "f", Message: "m"}, ExitErrorConfig},
		{"startup", StartupError{Op: "o", Cause: cause}, ExitErrorStartup},
		{"wrapped startup", fmt.Errorf("run: %w", StartupError{Op: "o", Cause: cause}), ExitErrorStartup},
		{"workload", WorkloadError{Workload: "cpu", Cause: cause}, ExitErrorWorkload},
		{"coordination", CoordinationError{Op: "o", Cause: cause}, ExitErrorCoordination},
		{"coordination wins over inner workload", CoordinationError{Op: "o", Cause: WorkloadError{Workload: "w", Cause: cause}}, ExitErrorCoordination},
		{"generic", cause, ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
