package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/procbench/internal/cli"
	"github.com/agbru/procbench/internal/config"
	apperrors "github.com/agbru/procbench/internal/errors"
	"github.com/agbru/procbench/internal/logging"
	"github.com/agbru/procbench/internal/metrics"
	"github.com/agbru/procbench/internal/orchestration"
	"github.com/agbru/procbench/internal/workload"
)

// runBenchmark prepares the workload, runs it under the orchestrator and
// reports. Preparation (the io data file) happens before any measurement.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{Quiet: a.Config.Quiet}

	if !a.Config.Quiet {
		if a.HostStats != nil {
			host := a.HostStats()
			cli.DisplayHeader(a.Config, &host, out)
		} else {
			cli.DisplayHeader(a.Config, nil, out)
		}
	}

	if err := a.prepare(); err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	w, err := BuildWorkload(a.Config)
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	orch := orchestration.New(a.MonitorFactory, a.Config.Interval, orchestration.WithLogger(a.Logger))
	result, err := orch.Run(ctx, w)
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	// Export first: a run whose metrics file cannot be written must not
	// leave a RESULT_CSV line behind.
	if a.Config.MetricsFile != "" {
		exporter := metrics.NewExporter()
		exporter.Observe(result.Record())
		if err := exporter.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("metrics export failed", err, logging.String("path", a.Config.MetricsFile))
			return presenter.HandleError(err, a.ErrWriter)
		}
	}

	presenter.PresentResult(result, out)
	return apperrors.ExitSuccess
}

// prepare creates the io workload's data file if it is missing or has the
// wrong size. Progress is shown on stderr so stdout stays parseable.
func (a *Application) prepare() error {
	if workload.Kind(a.Config.Workload) != workload.KindIO {
		return nil
	}
	var status workload.DummyFileStatus
	msg := fmt.Sprintf("Preparing %s (%d MiB)", a.Config.File, a.Config.FileSizeMB)
	err := cli.WithSpinner(a.ErrWriter, msg, func() error {
		var err error
		status, err = workload.EnsureDummyFile(a.Config.File, a.Config.FileSizeBytes(), a.Config.ChunkSize)
		return err
	})
	if err != nil {
		return err
	}
	a.Logger.Info("data file ready",
		logging.String("path", a.Config.File),
		logging.Bool("created", status == workload.DummyFileCreated),
	)
	return nil
}

// BuildWorkload maps a resolved configuration to the workload it names.
func BuildWorkload(cfg config.AppConfig) (workload.Workload, error) {
	switch workload.Kind(cfg.Workload) {
	case workload.KindCPU:
		return workload.PrimeCount{Start: cfg.Start, End: cfg.Limit}, nil
	case workload.KindConcurrent:
		return workload.ConcurrentPrimeCount{
			Start:      cfg.Start,
			End:        cfg.Limit,
			Workers:    cfg.Workers,
			SinkBuffer: cfg.SinkBuffer,
		}, nil
	case workload.KindIO:
		return workload.FileHash{
			Path:      cfg.File,
			ChunkSize: cfg.ChunkSize,
			Algorithm: workload.HashAlgorithm(cfg.Hash),
		}, nil
	default:
		return nil, apperrors.NewConfigError("unknown workload %q", cfg.Workload)
	}
}
