package orchestration

import (
	"io"
	"time"

	"github.com/agbru/procbench/internal/metrics"
	"github.com/agbru/procbench/internal/workload"
)

// BenchmarkResult is the outcome of one run. It is the shared domain type
// between orchestration and presentation layers.
type BenchmarkResult struct {
	RunID    string
	Workload string
	// Elapsed covers the workload only. Baseline and final readings and the
	// sampler join sit outside the timed region.
	Elapsed        time.Duration
	ElapsedSeconds float64
	// MemoryDeltaMB is signed: a run that releases memory reports a
	// negative figure.
	MemoryDeltaMB     float64
	AverageCPUPercent float64
	PeakCPUPercent    float64
	CPUStdDev         float64
	CPUSamples        int
	DroppedSamples    int
	// CPUTimeline holds the kept samples in arrival order.
	CPUTimeline    []float64
	HeapDeltaBytes int64
	GCCycles       uint32
	// PeakRSSBytes is zero where the platform has no getrusage.
	PeakRSSBytes uint64
	Output       workload.Output
}

// Record converts the result for the metrics exporter.
func (r BenchmarkResult) Record() metrics.RunRecord {
	return metrics.RunRecord{
		Workload:          r.Workload,
		Elapsed:           r.Elapsed,
		MemoryDeltaMB:     r.MemoryDeltaMB,
		AverageCPUPercent: r.AverageCPUPercent,
		PeakCPUPercent:    r.PeakCPUPercent,
		CPUSamples:        r.CPUSamples,
		HeapDeltaBytes:    r.HeapDeltaBytes,
		PeakRSSBytes:      r.PeakRSSBytes,
	}
}

// ResultPresenter renders a finished run. The CSV line must be the last
// thing PresentResult writes.
type ResultPresenter interface {
	PresentResult(result BenchmarkResult, out io.Writer)
}

// ErrorHandler reports a failed run and returns the process exit code.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
