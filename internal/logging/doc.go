// Package logging provides a unified logging interface for the benchmark harness.
// It abstracts the underlying logging implementation so the orchestrator, the
// sampler and the workloads log consistently, always to stderr, leaving stdout
// to the report.
package logging
