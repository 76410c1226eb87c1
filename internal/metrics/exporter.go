package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// RunRecord is the subset of a benchmark result exported as gauges.
type RunRecord struct {
	Workload          string
	Elapsed           time.Duration
	MemoryDeltaMB     float64
	AverageCPUPercent float64
	PeakCPUPercent    float64
	CPUSamples        int
	HeapDeltaBytes    int64
	PeakRSSBytes      uint64
}

// Exporter owns a private registry so repeated runs in one process (tests)
// never collide on the default registerer.
type Exporter struct {
	registry *prometheus.Registry

	elapsed    *prometheus.GaugeVec
	memDelta   *prometheus.GaugeVec
	cpuAverage *prometheus.GaugeVec
	cpuPeak    *prometheus.GaugeVec
	cpuSamples *prometheus.GaugeVec
	heapDelta  *prometheus.GaugeVec
	peakRSS    *prometheus.GaugeVec
}

// NewExporter registers the procbench gauges on a fresh registry.
func NewExporter() *Exporter {
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "procbench",
			Name:      name,
			Help:      help,
		}, []string{"workload"})
	}
	e := &Exporter{
		registry:   prometheus.NewRegistry(),
		elapsed:    gauge("elapsed_seconds", "Wall-clock time of the workload."),
		memDelta:   gauge("memory_delta_megabytes", "Resident memory after minus before, in MiB."),
		cpuAverage: gauge("cpu_average_percent", "Mean of non-zero CPU samples."),
		cpuPeak:    gauge("cpu_peak_percent", "Largest CPU sample."),
		cpuSamples: gauge("cpu_samples", "Number of non-zero CPU samples."),
		heapDelta:  gauge("heap_delta_bytes", "Go heap in use after minus before."),
		peakRSS:    gauge("peak_rss_bytes", "High-water resident memory reported by the kernel."),
	}
	e.registry.MustRegister(e.elapsed, e.memDelta, e.cpuAverage, e.cpuPeak, e.cpuSamples, e.heapDelta, e.peakRSS)
	return e
}

// Observe records one run.
func (e *Exporter) Observe(r RunRecord) {
	e.elapsed.WithLabelValues(r.Workload).Set(r.Elapsed.Seconds())
	e.memDelta.WithLabelValues(r.Workload).Set(r.MemoryDeltaMB)
	e.cpuAverage.WithLabelValues(r.Workload).Set(r.AverageCPUPercent)
	e.cpuPeak.WithLabelValues(r.Workload).Set(r.PeakCPUPercent)
	e.cpuSamples.WithLabelValues(r.Workload).Set(float64(r.CPUSamples))
	e.heapDelta.WithLabelValues(r.Workload).Set(float64(r.HeapDeltaBytes))
	if r.PeakRSSBytes > 0 {
		e.peakRSS.WithLabelValues(r.Workload).Set(float64(r.PeakRSSBytes))
	}
}

// Gatherer exposes the registry, mainly for tests.
func (e *Exporter) Gatherer() prometheus.Gatherer {
	return e.registry
}

// WriteTextfile writes every gauge in the node-exporter textfile format.
func (e *Exporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return apperrors.WrapError(err, "write metrics textfile %s", path)
	}
	return nil
}
