package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BytesPerMiB converts byte counts to the MB figure printed in reports.
const BytesPerMiB = 1024 * 1024

// CPUSummary condenses the sampler's readings.
type CPUSummary struct {
	Count  int
	Mean   float64
	StdDev float64
	Peak   float64
}

// SummarizeCPU returns the arithmetic mean, sample standard deviation and
// maximum of samples. An empty slice yields the zero summary, so a run too
// short to be sampled reports 0.00 average CPU.
func SummarizeCPU(samples []float64) CPUSummary {
	if len(samples) == 0 {
		return CPUSummary{}
	}
	s := CPUSummary{
		Count: len(samples),
		Mean:  stat.Mean(samples, nil),
		Peak:  floats.Max(samples),
	}
	if len(samples) > 1 {
		s.StdDev = stat.StdDev(samples, nil)
	}
	return s
}

// MemoryDeltaMB is the signed resident memory change in MiB. A negative value
// means the process released memory during the run.
func MemoryDeltaMB(before, after uint64) float64 {
	return (float64(after) - float64(before)) / BytesPerMiB
}
