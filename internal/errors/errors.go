package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of a benchmark run to the driver script.
const (
	ExitSuccess           = 0 // Indicates successful execution.
	ExitErrorGeneric      = 1 // Indicates a generic error.
	ExitErrorConfig       = 4 // Indicates a configuration error.
	ExitErrorStartup      = 5 // Indicates the harness could not start measuring.
	ExitErrorWorkload     = 6 // Indicates the timed workload failed.
	ExitErrorCoordination = 7 // Indicates a sampler or worker coordination fault.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// StartupError is returned when the harness cannot begin measuring, most
// commonly because the identity of the current process cannot be resolved.
// No timing has started when this error is produced.
type StartupError struct {
	// Op names the step that failed (e.g., "resolve process").
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error returns the failed step followed by the cause.
func (e StartupError) Error() string {
	return fmt.Sprintf("startup: %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause.
func (e StartupError) Unwrap() error { return e.Cause }

// MetricsReadError describes a single failed memory or CPU read. It is never
// returned from a run: the reading degrades to zero and the error is only
// handed to an optional observer for diagnostics.
type MetricsReadError struct {
	// Metric is "memory" or "cpu".
	Metric string
	// Cause is the underlying error.
	Cause error
}

// Error returns a message naming the metric that could not be read.
func (e MetricsReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Metric, e.Cause)
}

// Unwrap returns the underlying cause.
func (e MetricsReadError) Unwrap() error { return e.Cause }

// WorkloadError wraps a failure inside the timed workload, including a panic
// in any worker goroutine. It is the terminal error of the run.
type WorkloadError struct {
	// Workload is the name of the workload that failed.
	Workload string
	// Cause is the underlying error.
	Cause error
}

// Error returns the workload name followed by the cause.
func (e WorkloadError) Error() string {
	return fmt.Sprintf("workload %s: %v", e.Workload, e.Cause)
}

// Unwrap returns the underlying cause.
func (e WorkloadError) Unwrap() error { return e.Cause }

// CoordinationError reports a broken lifecycle invariant between the
// orchestrator and its goroutines: a shutdown signal set twice, a sampler
// started twice, or a panic inside the sampler.
type CoordinationError struct {
	// Op names the coordination step that failed.
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error returns the coordination step followed by the cause.
func (e CoordinationError) Error() string {
	return fmt.Sprintf("coordination: %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause.
func (e CoordinationError) Unwrap() error { return e.Cause }

// PanicError carries a recovered panic value so it can travel as an error.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
}

// Error formats the recovered value.
func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error returned by a run to the process exit code.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		configErr       ConfigError
		validationErr   ValidationError
		startupErr      StartupError
		workloadErr     WorkloadError
		coordinationErr CoordinationError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &startupErr):
		return ExitErrorStartup
	case errors.As(err, &coordinationErr):
		return ExitErrorCoordination
	case errors.As(err, &workloadErr):
		return ExitErrorWorkload
	default:
		return ExitErrorGeneric
	}
}
