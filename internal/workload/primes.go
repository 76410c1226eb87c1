package workload

import (
	"context"
	"fmt"

	apperrors "github.com/agbru/procbench/internal/errors"
	"github.com/agbru/procbench/internal/parallel"
)

// IsPrime reports whether n is prime using trial division by odd divisors up
// to sqrt(n). It is deliberately naive: the point is to burn CPU.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimeCount counts primes in [Start, End) on the calling goroutine.
type PrimeCount struct {
	Start, End int
}

// Name implements Workload.
func (w PrimeCount) Name() string { return string(KindCPU) }

// Run implements Workload.
func (w PrimeCount) Run(_ context.Context) (Output, error) {
	if w.End < w.Start {
		return Output{}, apperrors.ValidationError{Field: "range", Message: fmt.Sprintf("end %d is before start %d", w.End, w.Start)}
	}
	count := 0
	for n := w.Start; n < w.End; n++ {
		if IsPrime(n) {
			count++
		}
	}
	return Output{Kind: KindCPU, Count: count}, nil
}

// ConcurrentPrimeCount splits [Start, End) across Workers goroutines. Each
// worker forwards the primes it finds into a shared sink and the caller counts
// them as they drain.
type ConcurrentPrimeCount struct {
	Start, End int
	Workers    int
	SinkBuffer int
}

// Name implements Workload.
func (w ConcurrentPrimeCount) Name() string { return string(KindConcurrent) }

// Partitions returns the subranges each worker will scan.
func (w ConcurrentPrimeCount) Partitions() ([]parallel.WorkPartition, error) {
	return parallel.Partition(w.Start, w.End, w.Workers)
}

// Run implements Workload.
func (w ConcurrentPrimeCount) Run(_ context.Context) (Output, error) {
	parts, err := w.Partitions()
	if err != nil {
		return Output{}, err
	}
	pool := parallel.NewPool(parts,
		parallel.WithName(w.Name()),
		parallel.WithSinkBuffer(w.SinkBuffer),
	)
	count := 0
	if err := pool.Run(IsPrime, func(int) { count++ }); err != nil {
		return Output{}, err
	}
	return Output{Kind: KindConcurrent, Count: count}, nil
}
