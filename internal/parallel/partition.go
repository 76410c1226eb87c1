// Package parallel splits integer ranges across worker goroutines and fans
// their results back into a single consumer.
package parallel

import (
	"fmt"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// WorkPartition is a contiguous half-open range [Start, End) assigned to one
// worker.
type WorkPartition struct {
	Start int
	End   int
}

// Len returns the number of values in the partition; inverted or empty
// partitions have length 0.
func (p WorkPartition) Len() int {
	if p.End <= p.Start {
		return 0
	}
	return p.End - p.Start
}

// String formats the partition in interval notation.
func (p WorkPartition) String() string {
	return fmt.Sprintf("[%d,%d)", p.Start, p.End)
}

// Partition divides [start, end) into exactly workers contiguous chunks of
// size (end-start)/workers. The last chunk absorbs the remainder so the union
// is exact. When the range is shorter than workers, the leading chunks are
// empty; they contribute no results and are not an error.
func Partition(start, end, workers int) ([]WorkPartition, error) {
	if workers < 1 {
		return nil, apperrors.ValidationError{Field: "workers", Message: fmt.Sprintf("must be at least 1, got %d", workers)}
	}
	if end < start {
		return nil, apperrors.ValidationError{Field: "range", Message: fmt.Sprintf("end %d is before start %d", end, start)}
	}

	chunk := (end - start) / workers
	parts := make([]WorkPartition, workers)
	for i := range workers {
		lo := start + i*chunk
		hi := start + (i+1)*chunk
		if i == workers-1 {
			hi = end
		}
		parts[i] = WorkPartition{Start: lo, End: hi}
	}
	return parts, nil
}
