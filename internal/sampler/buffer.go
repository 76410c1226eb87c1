package sampler

import "sync"

// SampleBuffer holds CPU readings in arrival order. Readings that are not
// strictly positive are dropped: a zero is what a fresh monitor reports on its
// first call and what an idle tick reports, and neither says anything about
// the workload.
type SampleBuffer struct {
	mu      sync.Mutex
	samples []float64
	dropped int
}

// Add appends pct if it is > 0 and reports whether it was kept.
func (b *SampleBuffer) Add(pct float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !(pct > 0) {
		b.dropped++
		return false
	}
	b.samples = append(b.samples, pct)
	return true
}

// Values returns a copy of the kept readings.
func (b *SampleBuffer) Values() []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]float64, len(b.samples))
	copy(out, b.samples)
	return out
}

// Len returns the number of kept readings.
func (b *SampleBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samples)
}

// Dropped returns how many readings were discarded as zero.
func (b *SampleBuffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
