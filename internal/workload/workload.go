// Package workload holds the task bodies the harness times: trial-division
// prime counting on one goroutine or fanned out across a worker pool, and a
// chunked streaming hash over a file.
package workload

import "context"

// Kind identifies a workload on the command line and in reports.
type Kind string

const (
	KindCPU        Kind = "cpu"
	KindConcurrent Kind = "concurrent"
	KindIO         Kind = "io"
)

// Kinds lists every supported workload in display order.
var Kinds = []Kind{KindCPU, KindConcurrent, KindIO}

// Output is the opaque result of a run. Count is set by the prime workloads,
// Bytes and Digest by the io workload.
type Output struct {
	Kind   Kind
	Count  int
	Bytes  int64
	Digest string
}

// Workload is the single entry point the orchestrator times.
type Workload interface {
	Name() string
	Run(ctx context.Context) (Output, error)
}

// Func adapts a plain function to Workload.
type Func struct {
	Label string
	Fn    func(ctx context.Context) (Output, error)
}

// Name implements Workload.
func (f Func) Name() string { return f.Label }

// Run implements Workload.
func (f Func) Run(ctx context.Context) (Output, error) { return f.Fn(ctx) }
