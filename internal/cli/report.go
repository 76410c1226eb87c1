// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/procbench/internal/config"
	"github.com/agbru/procbench/internal/format"
	"github.com/agbru/procbench/internal/orchestration"
	"github.com/agbru/procbench/internal/sysmon"
	"github.com/agbru/procbench/internal/ui"
	"github.com/agbru/procbench/internal/workload"
)

const (
	// CSVPrefix marks the machine-readable summary line.
	CSVPrefix = "RESULT_CSV:"
	// SparklineWidth caps the CPU timeline in the report.
	SparklineWidth = 60
)

// FormatCSVLine renders the summary consumed by driver scripts: elapsed
// seconds, memory delta in MB and average CPU percent.
func FormatCSVLine(r orchestration.BenchmarkResult) string {
	return fmt.Sprintf("%s%.4f,%.2f,%.2f", CSVPrefix, r.ElapsedSeconds, r.MemoryDeltaMB, r.AverageCPUPercent)
}

// DisplayHeader prints what is about to run and, when available, the current
// host load so a noisy machine is visible in the report.
func DisplayHeader(cfg config.AppConfig, host *sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.Title("--- Benchmark Configuration ---"))
	fmt.Fprintf(out, "Workload: %s%s%s\n", ui.ColorPrimary(), cfg.Workload, ui.ColorReset())
	switch workload.Kind(cfg.Workload) {
	case workload.KindCPU:
		fmt.Fprintf(out, "Range: [%s, %s) on one goroutine\n", format.FormatCount(int64(cfg.Start)), format.FormatCount(int64(cfg.Limit)))
	case workload.KindConcurrent:
		fmt.Fprintf(out, "Range: [%s, %s) across %s%d%s workers\n",
			format.FormatCount(int64(cfg.Start)), format.FormatCount(int64(cfg.Limit)), ui.ColorCyan(), cfg.Workers, ui.ColorReset())
	case workload.KindIO:
		fmt.Fprintf(out, "File: %s (%s, %s chunks, %s)\n",
			cfg.File, format.FormatBytes(uint64(cfg.FileSizeBytes())), format.FormatBytes(uint64(cfg.ChunkSize)), cfg.Hash)
	}
	fmt.Fprintf(out, "Sampling interval: %s\n", cfg.Interval)
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), runtime.Version())
	if host != nil {
		fmt.Fprintf(out, "Host load: CPU %.1f%%, memory %.1f%% of %s\n",
			host.CPUPercent, host.MemPercent, format.FormatBytes(host.MemTotal))
	}
	fmt.Fprintln(out)
}

// DisplayOutput prints the workload-specific result lines.
func DisplayOutput(o workload.Output, out io.Writer) {
	switch o.Kind {
	case workload.KindCPU, workload.KindConcurrent:
		fmt.Fprintf(out, "Primes found: %s%s%s\n", ui.ColorGreen(), format.FormatCount(int64(o.Count)), ui.ColorReset())
	case workload.KindIO:
		fmt.Fprintf(out, "Bytes read: %s (%s)\n", format.FormatCount(o.Bytes), format.FormatBytes(uint64(o.Bytes)))
		fmt.Fprintf(out, "Digest: %s\n", o.Digest)
	}
}

// DisplayResult prints the human-readable report followed by the CSV line.
// The CSV line is always the last thing written.
func DisplayResult(r orchestration.BenchmarkResult, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.Title("--- Results ---"))
	DisplayOutput(r.Output, out)
	fmt.Fprintf(out, "Elapsed: %s%s%s (%ss)\n", ui.ColorYellow(), format.FormatExecutionDuration(r.Elapsed), ui.ColorReset(), format.FormatSeconds(r.Elapsed))
	fmt.Fprintf(out, "Memory delta: %s\n", format.FormatSignedMB(r.MemoryDeltaMB))
	if r.CPUSamples == 0 {
		fmt.Fprintf(out, "CPU: %sno non-zero samples%s (run shorter than the sampling interval)\n", ui.ColorYellow(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "CPU: average %.2f%%, peak %.2f%%, stddev %.2f over %d samples (%d zero readings dropped)\n",
			r.AverageCPUPercent, r.PeakCPUPercent, r.CPUStdDev, r.CPUSamples, r.DroppedSamples)
		if len(r.CPUTimeline) > 1 {
			fmt.Fprintf(out, "CPU timeline: %s%s%s\n", ui.ColorCyan(), format.Sparkline(r.CPUTimeline, SparklineWidth), ui.ColorReset())
		}
	}
	fmt.Fprintf(out, "Go heap delta: %s, GC cycles: %d\n", format.FormatSignedBytes(r.HeapDeltaBytes), r.GCCycles)
	if r.PeakRSSBytes > 0 {
		fmt.Fprintf(out, "Peak RSS: %s\n", format.FormatBytes(r.PeakRSSBytes))
	}
	fmt.Fprintf(out, "Run ID: %s%s%s\n\n", ui.ColorSecondary(), r.RunID, ui.ColorReset())
	fmt.Fprintln(out, FormatCSVLine(r))
}

// DisplayQuietResult prints only the CSV line.
func DisplayQuietResult(r orchestration.BenchmarkResult, out io.Writer) {
	fmt.Fprintln(out, FormatCSVLine(r))
}
