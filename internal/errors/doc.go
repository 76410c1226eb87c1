// Package apperrors defines structured application error types for the
// benchmark harness. Each fault class (startup, metrics read, workload,
// coordination, configuration) has its own type carrying the underlying cause,
// and ExitCodeFor maps them to process exit codes.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types with a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
