package metrics

import "runtime"

// MemorySnapshot holds a point-in-time Go runtime memory reading. It
// complements the OS-level resident figure with what the collector sees.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in live heap objects
	HeapSys     uint64 // bytes obtained from the OS for the heap
	Sys         uint64 // total bytes obtained from the OS
	NumGC       uint32 // completed GC cycles
	HeapObjects uint64
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics. ReadMemStats stops the world
// briefly, so callers take one before and one after a run, never in a loop.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapSys:     m.HeapSys,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}

// HeapDelta is the signed change in live heap between two snapshots.
func HeapDelta(before, after MemorySnapshot) int64 {
	return int64(after.HeapAlloc) - int64(before.HeapAlloc)
}

// GCCycles is the number of collections that completed between two snapshots.
func GCCycles(before, after MemorySnapshot) uint32 {
	return after.NumGC - before.NumGC
}
