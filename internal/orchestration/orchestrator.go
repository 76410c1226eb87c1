package orchestration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/procbench/internal/errors"
	"github.com/agbru/procbench/internal/logging"
	"github.com/agbru/procbench/internal/metrics"
	"github.com/agbru/procbench/internal/sampler"
	"github.com/agbru/procbench/internal/sysmon"
	"github.com/agbru/procbench/internal/workload"
)

const tracerName = "github.com/agbru/procbench/internal/orchestration"

// Orchestrator runs one workload under measurement.
type Orchestrator struct {
	newMonitor sysmon.MonitorFactory
	interval   time.Duration
	logger     logging.Logger
	memory     *metrics.MemoryCollector
	peakRSS    func() (uint64, bool)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for run lifecycle events.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithPeakRSS overrides the high-water RSS reader.
func WithPeakRSS(fn func() (uint64, bool)) Option {
	return func(o *Orchestrator) { o.peakRSS = fn }
}

// New returns an orchestrator that samples every interval. factory is called
// once for the orchestrator's own readings and once more by the sampler.
func New(factory sysmon.MonitorFactory, interval time.Duration, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		newMonitor: factory,
		interval:   interval,
		logger:     logging.Nop{},
		memory:     metrics.NewMemoryCollector(),
		peakRSS:    sysmon.PeakRSS,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes w once. Any error leaves the result zero: there is no partial
// report.
func (o *Orchestrator) Run(ctx context.Context, w workload.Workload) (BenchmarkResult, error) {
	runID := uuid.NewString()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "benchmark.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("procbench.run_id", runID),
		attribute.String("procbench.workload", w.Name()),
	)

	result, err := o.run(ctx, runID, w)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Error("benchmark failed", err, logging.String("run_id", runID), logging.String("workload", w.Name()))
		return BenchmarkResult{}, err
	}
	span.SetAttributes(
		attribute.Float64("procbench.elapsed_seconds", result.ElapsedSeconds),
		attribute.Float64("procbench.cpu_average_percent", result.AverageCPUPercent),
		attribute.Int("procbench.cpu_samples", result.CPUSamples),
	)
	return result, nil
}

func (o *Orchestrator) run(ctx context.Context, runID string, w workload.Workload) (BenchmarkResult, error) {
	monitor, err := o.newMonitor()
	if err != nil {
		return BenchmarkResult{}, err
	}
	baseline := monitor.Snapshot()
	heapBefore := o.memory.Snapshot()
	o.logger.Debug("baseline taken",
		logging.String("run_id", runID),
		logging.Uint64("rss_bytes", baseline.ResidentMemoryBytes),
	)

	s := sampler.New(o.interval, o.newMonitor, sampler.WithLogger(o.logger))
	if err := s.Start(); err != nil {
		return BenchmarkResult{}, err
	}
	o.logger.Info("workload started",
		logging.String("run_id", runID),
		logging.String("workload", w.Name()),
		logging.Duration("interval", o.interval),
	)

	start := time.Now()
	out, runErr := w.Run(ctx)
	elapsed := time.Since(start)

	// The sampler is always joined, even when the workload failed.
	stopErr := s.Stop()
	if runErr != nil {
		wErr := asWorkloadError(w.Name(), runErr)
		if stopErr != nil {
			o.logger.Error("sampler fault during failed workload", stopErr, logging.String("run_id", runID))
			return BenchmarkResult{}, errors.Join(wErr, stopErr)
		}
		return BenchmarkResult{}, wErr
	}
	if stopErr != nil {
		return BenchmarkResult{}, stopErr
	}

	final := monitor.Snapshot()
	heapAfter := o.memory.Snapshot()
	samples := s.Samples()
	cpu := metrics.SummarizeCPU(samples)

	result := BenchmarkResult{
		RunID:             runID,
		Workload:          w.Name(),
		Elapsed:           elapsed,
		ElapsedSeconds:    elapsed.Seconds(),
		MemoryDeltaMB:     metrics.MemoryDeltaMB(baseline.ResidentMemoryBytes, final.ResidentMemoryBytes),
		AverageCPUPercent: cpu.Mean,
		PeakCPUPercent:    cpu.Peak,
		CPUStdDev:         cpu.StdDev,
		CPUSamples:        cpu.Count,
		DroppedSamples:    s.Dropped(),
		CPUTimeline:       samples,
		HeapDeltaBytes:    metrics.HeapDelta(heapBefore, heapAfter),
		GCCycles:          metrics.GCCycles(heapBefore, heapAfter),
		Output:            out,
	}
	if peak, ok := o.peakRSS(); ok {
		result.PeakRSSBytes = peak
	}

	o.logger.Info("workload finished",
		logging.String("run_id", runID),
		logging.Duration("elapsed", elapsed),
		logging.Int("cpu_samples", cpu.Count),
		logging.Int("dropped_samples", result.DroppedSamples),
		logging.Float64("memory_delta_mb", result.MemoryDeltaMB),
	)
	return result, nil
}

// asWorkloadError keeps typed errors that already classify the failure and
// wraps everything else as a WorkloadError.
func asWorkloadError(name string, err error) error {
	var (
		wErr   apperrors.WorkloadError
		valErr apperrors.ValidationError
		cfgErr apperrors.ConfigError
	)
	if errors.As(err, &wErr) || errors.As(err, &valErr) || errors.As(err, &cfgErr) {
		return err
	}
	return apperrors.WorkloadError{Workload: name, Cause: err}
}
