package config

import (
	"runtime"
	"time"

	"github.com/agbru/procbench/internal/workload"
)

// Per-workload defaults. The cpu workload runs long enough that a coarser
// interval still gathers plenty of samples; the others finish quickly and
// need a finer one.
const (
	DefaultCPULimit        = 5_000_000
	DefaultConcurrentLimit = 10_000_000
	DefaultCPUInterval     = 100 * time.Millisecond
	DefaultFastInterval    = 10 * time.Millisecond
)

// ApplyWorkloadDefaults fills Limit, Workers and Interval when they are left
// at zero, preserving anything the user set explicitly.
func ApplyWorkloadDefaults(cfg AppConfig) AppConfig {
	if cfg.Limit == 0 {
		switch workload.Kind(cfg.Workload) {
		case workload.KindCPU:
			cfg.Limit = DefaultCPULimit
		case workload.KindConcurrent:
			cfg.Limit = DefaultConcurrentLimit
		}
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	if cfg.Interval == 0 {
		if workload.Kind(cfg.Workload) == workload.KindCPU {
			cfg.Interval = DefaultCPUInterval
		} else {
			cfg.Interval = DefaultFastInterval
		}
	}
	return cfg
}

// EstimateWorkers is the worker count used when --workers is 0.
func EstimateWorkers() int {
	return max(runtime.NumCPU(), 1)
}
