// Package app wires configuration, workloads, the orchestrator and the
// report into a single command-line run.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/agbru/procbench/internal/cli"
	"github.com/agbru/procbench/internal/config"
	"github.com/agbru/procbench/internal/logging"
	"github.com/agbru/procbench/internal/sysmon"
	"github.com/agbru/procbench/internal/ui"
)

// Application represents one procbench invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	// MonitorFactory builds the process monitors. Tests replace it.
	MonitorFactory sysmon.MonitorFactory
	// HostStats describes the machine in the report header. Nil skips it.
	HostStats func() sysmon.Stats
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithMonitorFactory sets a custom monitor factory.
func WithMonitorFactory(f sysmon.MonitorFactory) AppOption {
	return func(a *Application) { a.MonitorFactory = f }
}

// WithHostStats sets the host load reader; nil disables it.
func WithHostStats(fn func() sysmon.Stats) AppOption {
	return func(a *Application) { a.HostStats = fn }
}

// New creates a new Application by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "procbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLogger(errWriter, "procbench", cfg.LogLevel, cfg.NoColor)
	app := &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    logger,
		HostStats: sysmon.Sample,
	}
	app.MonitorFactory = sysmon.NewProcessMonitorFactory(sysmon.WithFaultHandler(func(err error) {
		logger.Debug("metrics read degraded to zero", logging.Err(err))
	}))
	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

// Run executes the benchmark and returns the process exit code. Nothing but
// the report goes to out, so the CSV line is the last line on stdout.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	a.Logger.Debug("configuration resolved", logging.String("config", a.Config.String()))
	return a.runBenchmark(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ReportStartupError prints err the same way a failed run is reported and
// returns the matching exit code.
func ReportStartupError(err error, errWriter io.Writer) int {
	return cli.CLIResultPresenter{}.HandleError(err, errWriter)
}
