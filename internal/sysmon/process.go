//go:generate mockgen -source=process.go -destination=mocks/mock_monitor.go -package=mocks

package sysmon

import (
	"os"

	"github.com/shirou/gopsutil/v4/process"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// ProcessSnapshot is a point-in-time reading for the current process.
type ProcessSnapshot struct {
	ResidentMemoryBytes uint64
	CPUPercent          float64 // since the previous Snapshot on the same monitor
}

// Monitor reads the current process's resource usage.
//
// Implementations are not required to be safe for concurrent use: every
// goroutine that samples must own its own Monitor.
type Monitor interface {
	Snapshot() ProcessSnapshot
}

// MonitorFactory builds a fresh Monitor. The orchestrator and the sampler each
// call it rather than sharing one instance.
type MonitorFactory func() (Monitor, error)

// ProcessMonitor is the gopsutil-backed Monitor for the calling process.
//
// gopsutil keeps the previous CPU times inside process.Process without
// locking, so one ProcessMonitor must never be refreshed from two goroutines.
type ProcessMonitor struct {
	proc    *process.Process
	onFault func(error)
}

// MonitorOption configures a ProcessMonitor.
type MonitorOption func(*ProcessMonitor)

// WithFaultHandler registers a callback receiving every MetricsReadError.
// The reading itself still degrades to zero.
func WithFaultHandler(fn func(error)) MonitorOption {
	return func(m *ProcessMonitor) { m.onFault = fn }
}

// NewProcessMonitor resolves the current process. Failure is a StartupError:
// nothing can be measured without a process handle.
func NewProcessMonitor(opts ...MonitorOption) (*ProcessMonitor, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, apperrors.StartupError{Op: "resolve current process", Cause: err}
	}
	m := &ProcessMonitor{proc: proc}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NewProcessMonitorFactory returns a MonitorFactory producing independent
// ProcessMonitors configured with opts.
func NewProcessMonitorFactory(opts ...MonitorOption) MonitorFactory {
	return func() (Monitor, error) {
		m, err := NewProcessMonitor(opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// ResidentMemory returns the resident set size in bytes, or 0 if it cannot
// be read.
func (m *ProcessMonitor) ResidentMemory() uint64 {
	info, err := m.proc.MemoryInfo()
	if err != nil || info == nil {
		m.fault("memory", err)
		return 0
	}
	return info.RSS
}

// CPUPercent returns CPU utilization since the previous call on this monitor.
// The first call after construction reads 0. Errors also read 0.
func (m *ProcessMonitor) CPUPercent() float64 {
	pct, err := m.proc.Percent(0)
	if err != nil {
		m.fault("cpu", err)
		return 0
	}
	return pct
}

// Snapshot reads memory and CPU.
func (m *ProcessMonitor) Snapshot() ProcessSnapshot {
	return ProcessSnapshot{
		ResidentMemoryBytes: m.ResidentMemory(),
		CPUPercent:          m.CPUPercent(),
	}
}

func (m *ProcessMonitor) fault(metric string, err error) {
	if m.onFault == nil {
		return
	}
	if err == nil {
		err = os.ErrInvalid
	}
	m.onFault(apperrors.MetricsReadError{Metric: metric, Cause: err})
}
