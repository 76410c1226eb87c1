// Package config parses command-line flags, environment variables and an
// optional YAML file into the AppConfig for a single benchmark run.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/procbench/internal/errors"
	"github.com/agbru/procbench/internal/workload"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "PROCBENCH_"

// Flag defaults.
const (
	DefaultWorkload   = string(workload.KindCPU)
	DefaultStart      = 2
	DefaultWorkers    = 8
	DefaultFile       = "io_test_data.bin"
	DefaultFileSizeMB = 4000
	DefaultHash       = string(workload.HashSHA256)
	DefaultLogLevel   = "warn"
)

// AppConfig aggregates the settings of one run. Zero values for Limit,
// Workers and Interval mean "use the workload default" until
// ApplyWorkloadDefaults resolves them.
type AppConfig struct {
	Workload    string
	Start       int
	Limit       int
	Workers     int
	Interval    time.Duration
	File        string
	FileSizeMB  int
	ChunkSize   int
	Hash        string
	SinkBuffer  int
	MetricsFile string
	ConfigFile  string
	LogLevel    string
	Quiet       bool
	NoColor     bool
}

// FileSizeBytes is the dummy file size the io workload prepares.
func (c AppConfig) FileSizeBytes() int64 {
	return int64(c.FileSizeMB) * 1024 * 1024
}

// Validate checks the semantic consistency of a resolved configuration.
func (c AppConfig) Validate() error {
	kinds := make([]string, len(workload.Kinds))
	for i, k := range workload.Kinds {
		kinds[i] = string(k)
	}
	switch {
	case !slices.Contains(kinds, c.Workload):
		return apperrors.NewConfigError("unknown workload %q (want one of %s)", c.Workload, strings.Join(kinds, ", "))
	case c.Start < 0:
		return apperrors.NewConfigError("start must be >= 0, got %d", c.Start)
	case c.Workload != string(workload.KindIO) && c.Limit < c.Start:
		return apperrors.NewConfigError("limit %d is below start %d", c.Limit, c.Start)
	case c.Workers < 1:
		return apperrors.NewConfigError("workers must be >= 1, got %d", c.Workers)
	case c.Interval <= 0:
		return apperrors.NewConfigError("interval must be positive, got %s", c.Interval)
	case c.ChunkSize < 1:
		return apperrors.NewConfigError("chunk-size must be >= 1, got %d", c.ChunkSize)
	case c.FileSizeMB < 0:
		return apperrors.NewConfigError("file-size-mb must be >= 0, got %d", c.FileSizeMB)
	case c.Workload == string(workload.KindIO) && c.File == "":
		return apperrors.NewConfigError("file must not be empty for the io workload")
	case c.SinkBuffer < 1:
		return apperrors.NewConfigError("sink-buffer must be >= 1, got %d", c.SinkBuffer)
	}
	if _, err := workload.NewHash(workload.HashAlgorithm(c.Hash)); err != nil || c.Hash == "" {
		return apperrors.NewConfigError("unknown hash %q (want sha256 or xxhash)", c.Hash)
	}
	if !validLogLevel(c.LogLevel) {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}

func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ParseConfig resolves the configuration with the priority
// flags > environment > YAML file > defaults, then fills the workload
// defaults and validates. flag.ErrHelp is returned unchanged; every other
// failure is a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Workload, "workload", DefaultWorkload, "Workload to benchmark: cpu, concurrent or io.")
	fs.IntVar(&cfg.Start, "start", DefaultStart, "First integer tested by the prime workloads (inclusive).")
	fs.IntVar(&cfg.Limit, "limit", 0, "End of the prime range (exclusive). 0 uses the workload default.")
	fs.IntVar(&cfg.Workers, "workers", DefaultWorkers, "Worker goroutines for the concurrent workload. 0 uses the CPU count.")
	fs.DurationVar(&cfg.Interval, "interval", 0, "CPU sampling interval. 0 uses the workload default.")
	fs.StringVar(&cfg.File, "file", DefaultFile, "Data file hashed by the io workload.")
	fs.IntVar(&cfg.FileSizeMB, "file-size-mb", DefaultFileSizeMB, "Size of the io data file in MiB. It is created if missing or of the wrong size.")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", workload.DefaultChunkSize, "Read size in bytes for the io workload.")
	fs.StringVar(&cfg.Hash, "hash", DefaultHash, "Streaming hash for the io workload: sha256 or xxhash.")
	fs.IntVar(&cfg.SinkBuffer, "sink-buffer", 1024, "Capacity of the concurrent workload's result channel.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write run gauges to this file in Prometheus text format.")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML configuration file.")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Log level on stderr: debug, info, warn or error.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the RESULT_CSV line.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.ConfigError{Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if path := resolveConfigFile(cfg, fs); path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		fc.apply(&cfg, fs)
	}
	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return AppConfig{}, err
	}

	cfg = ApplyWorkloadDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// String renders the resolved settings for debug logging.
func (c AppConfig) String() string {
	return fmt.Sprintf("workload=%s range=[%d,%d) workers=%d interval=%s file=%s size=%dMiB chunk=%d hash=%s",
		c.Workload, c.Start, c.Limit, c.Workers, c.Interval, c.File, c.FileSizeMB, c.ChunkSize, c.Hash)
}
