package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// FileConfig mirrors the flags in YAML. Pointer fields distinguish "absent"
// from a zero value.
type FileConfig struct {
	Workload    *string        `yaml:"workload"`
	Start       *int           `yaml:"start"`
	Limit       *int           `yaml:"limit"`
	Workers     *int           `yaml:"workers"`
	Interval    *time.Duration `yaml:"interval"`
	File        *string        `yaml:"file"`
	FileSizeMB  *int           `yaml:"file_size_mb"`
	ChunkSize   *int           `yaml:"chunk_size"`
	Hash        *string        `yaml:"hash"`
	SinkBuffer  *int           `yaml:"sink_buffer"`
	MetricsFile *string        `yaml:"metrics_file"`
	LogLevel    *string        `yaml:"log_level"`
	Quiet       *bool          `yaml:"quiet"`
	NoColor     *bool          `yaml:"no_color"`
}

// LoadFile reads and strictly decodes a YAML configuration file. Unknown keys
// are rejected so typos do not pass silently.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("read config file: %v", err)
	}
	return decodeFile(data)
}

func decodeFile(data []byte) (FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, apperrors.NewConfigError("parse config file: %v", err)
	}
	return fc, nil
}

// apply copies every present field whose flag was not set on the command
// line. Environment overrides run afterwards and win over the file.
func (fc FileConfig) apply(cfg *AppConfig, fs *flag.FlagSet) {
	setField(&cfg.Workload, fc.Workload, fs, "workload")
	setField(&cfg.Start, fc.Start, fs, "start")
	setField(&cfg.Limit, fc.Limit, fs, "limit")
	setField(&cfg.Workers, fc.Workers, fs, "workers")
	setField(&cfg.Interval, fc.Interval, fs, "interval")
	setField(&cfg.File, fc.File, fs, "file")
	setField(&cfg.FileSizeMB, fc.FileSizeMB, fs, "file-size-mb")
	setField(&cfg.ChunkSize, fc.ChunkSize, fs, "chunk-size")
	setField(&cfg.Hash, fc.Hash, fs, "hash")
	setField(&cfg.SinkBuffer, fc.SinkBuffer, fs, "sink-buffer")
	setField(&cfg.MetricsFile, fc.MetricsFile, fs, "metrics-file")
	setField(&cfg.LogLevel, fc.LogLevel, fs, "log-level")
	setField(&cfg.Quiet, fc.Quiet, fs, "quiet", "q")
	setField(&cfg.NoColor, fc.NoColor, fs, "no-color")
}

func setField[T any](dst *T, v *T, fs *flag.FlagSet, names ...string) {
	if v != nil && !isFlagSetAny(fs, names...) {
		*dst = *v
	}
}
