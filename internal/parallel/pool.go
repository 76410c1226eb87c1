package parallel

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// Predicate selects the values a worker forwards to the sink.
type Predicate func(n int) bool

// Pool runs one goroutine per WorkPartition.
type Pool struct {
	name       string
	partitions []WorkPartition
	sinkBuffer int
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithSinkBuffer sets the capacity of the result channel.
func WithSinkBuffer(n int) PoolOption {
	return func(p *Pool) { p.sinkBuffer = n }
}

// WithName sets the workload name used in errors.
func WithName(name string) PoolOption {
	return func(p *Pool) { p.name = name }
}

// NewPool creates a pool over the given partitions.
func NewPool(partitions []WorkPartition, opts ...PoolOption) *Pool {
	p := &Pool{name: "pool", partitions: partitions, sinkBuffer: DefaultSinkBuffer}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run evaluates pred over every partition concurrently and calls consume, on
// the caller's goroutine, for every value that satisfies it. Run returns once
// the sink is exhausted and every worker has been joined.
//
// A panic in a worker is recovered and returned as a WorkloadError; the other
// workers still run to completion.
func (p *Pool) Run(pred Predicate, consume func(int)) error {
	sink := NewResultSink[int](p.sinkBuffer)

	var g errgroup.Group
	for i, part := range p.partitions {
		producer := sink.Producer()
		g.Go(func() (err error) {
			defer producer.Close()
			defer func() {
				if r := recover(); r != nil {
					err = apperrors.WorkloadError{
						Workload: p.name,
						Cause:    fmt.Errorf("worker %d on %s: %w", i, part, apperrors.PanicError{Value: r}),
					}
				}
			}()
			for n := part.Start; n < part.End; n++ {
				if pred(n) {
					producer.Send(n)
				}
			}
			return nil
		})
	}
	// The pool keeps no handle of its own: once the workers close theirs the
	// drain below ends.
	sink.Seal()

	sink.Drain(consume)

	return g.Wait()
}

// Collect is Run with the results gathered into a slice, in arrival order.
func (p *Pool) Collect(pred Predicate) ([]int, error) {
	var out []int
	err := p.Run(pred, func(n int) { out = append(out, n) })
	return out, err
}
