// Package orchestration sequences a single benchmark run: baseline reading,
// sampler start, timed workload, sampler stop, final reading and aggregation.
// Presentation is kept out of this package behind ResultPresenter and
// ErrorHandler.
package orchestration
