// Package sampler polls process CPU usage on a background goroutine while a
// workload runs.
package sampler

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/atomic"

	apperrors "github.com/agbru/procbench/internal/errors"
	"github.com/agbru/procbench/internal/logging"
	"github.com/agbru/procbench/internal/parallel"
	"github.com/agbru/procbench/internal/sysmon"
)

// State is the lifecycle position of a Sampler.
type State int32

const (
	StateIdle State = iota
	StateSampling
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSampling:
		return "sampling"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Sampler owns one goroutine that sleeps for the interval, then checks the
// shutdown signal, then samples. Checking after the sleep means the final
// partial interval before shutdown is never measured, and a stop request is
// honored at most one interval after it is made.
type Sampler struct {
	interval   time.Duration
	newMonitor sysmon.MonitorFactory
	logger     logging.Logger

	signal ShutdownSignal
	buffer SampleBuffer
	state  atomic.Int32
	ticks  atomic.Int64
	faults parallel.ErrorCollector
	done   chan struct{}
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger used for tick-level debug output.
func WithLogger(l logging.Logger) Option {
	return func(s *Sampler) { s.logger = l }
}

// New creates an idle sampler. The factory is called from the sampler's own
// goroutine so the monitor it returns is never shared.
func New(interval time.Duration, factory sysmon.MonitorFactory, opts ...Option) *Sampler {
	s := &Sampler{
		interval:   interval,
		newMonitor: factory,
		logger:     logging.Nop{},
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Sampler) State() State {
	return State(s.state.Load())
}

// Ticks returns how many times the sampler has taken a reading.
func (s *Sampler) Ticks() int64 {
	return s.ticks.Load()
}

// Start launches the sampling goroutine and waits until it has built its
// monitor. A monitor failure is returned here, before anything is timed.
func (s *Sampler) Start() error {
	if s.interval <= 0 {
		return apperrors.ValidationError{Field: "interval", Message: fmt.Sprintf("must be positive, got %s", s.interval)}
	}
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateSampling)) {
		return apperrors.CoordinationError{Op: "start sampler", Cause: fmt.Errorf("sampler is %s", s.State())}
	}

	ready := make(chan error, 1)
	go s.run(ready)
	if err := <-ready; err != nil {
		<-s.done
		return err
	}
	return nil
}

// Stop raises the shutdown signal, joins the goroutine and returns any fault
// it recorded. Stop must be called exactly once after a successful Start.
func (s *Sampler) Stop() error {
	if s.State() == StateIdle {
		return apperrors.CoordinationError{Op: "stop sampler", Cause: errors.New("sampler was never started")}
	}
	if !s.signal.Set() {
		return apperrors.CoordinationError{Op: "stop sampler", Cause: errors.New("shutdown signal already set")}
	}
	<-s.done
	return s.faults.Err()
}

// Samples returns the kept CPU readings. It is only meaningful after Stop.
func (s *Sampler) Samples() []float64 {
	return s.buffer.Values()
}

// Dropped returns how many zero readings were discarded.
func (s *Sampler) Dropped() int {
	return s.buffer.Dropped()
}

func (s *Sampler) run(ready chan<- error) {
	defer close(s.done)
	defer s.state.Store(int32(StateStopped))
	defer func() {
		if r := recover(); r != nil {
			err := apperrors.CoordinationError{Op: "sampler goroutine", Cause: apperrors.PanicError{Value: r}}
			s.faults.SetError(err)
			// A panic inside the factory leaves Start waiting on ready.
			select {
			case ready <- err:
			default:
			}
		}
	}()

	monitor, err := s.newMonitor()
	if err != nil {
		ready <- err
		return
	}
	ready <- nil

	for {
		time.Sleep(s.interval)
		if s.signal.IsSet() {
			return
		}
		snap := monitor.Snapshot()
		s.ticks.Inc()
		if !s.buffer.Add(snap.CPUPercent) {
			s.logger.Debug("zero cpu reading dropped", logging.Int64("tick", s.ticks.Load()))
		}
	}
}
