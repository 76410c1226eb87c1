// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the PROCBENCH_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

func intSetter(field func(*AppConfig) *int) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func stringSetter(field func(*AppConfig) *string) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		*field(c) = v
		return nil
	}
}

func boolSetter(field func(*AppConfig) *bool) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		*field(c) = parseBoolEnv(v, *field(c))
		return nil
	}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"START", []string{"start"}, intSetter(func(c *AppConfig) *int { return &c.Start })},
	{"LIMIT", []string{"limit"}, intSetter(func(c *AppConfig) *int { return &c.Limit })},
	{"WORKERS", []string{"workers"}, intSetter(func(c *AppConfig) *int { return &c.Workers })},
	{"FILE_SIZE_MB", []string{"file-size-mb"}, intSetter(func(c *AppConfig) *int { return &c.FileSizeMB })},
	{"CHUNK_SIZE", []string{"chunk-size"}, intSetter(func(c *AppConfig) *int { return &c.ChunkSize })},
	{"SINK_BUFFER", []string{"sink-buffer"}, intSetter(func(c *AppConfig) *int { return &c.SinkBuffer })},

	// Duration overrides
	{"INTERVAL", []string{"interval"}, func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Interval = parsed
		return nil
	}},

	// String overrides
	{"WORKLOAD", []string{"workload"}, stringSetter(func(c *AppConfig) *string { return &c.Workload })},
	{"FILE", []string{"file"}, stringSetter(func(c *AppConfig) *string { return &c.File })},
	{"HASH", []string{"hash"}, stringSetter(func(c *AppConfig) *string { return &c.Hash })},
	{"METRICS_FILE", []string{"metrics-file"}, stringSetter(func(c *AppConfig) *string { return &c.MetricsFile })},
	{"LOG_LEVEL", []string{"log-level"}, stringSetter(func(c *AppConfig) *string { return &c.LogLevel })},

	// Boolean overrides
	{"QUIET", []string{"quiet", "q"}, boolSetter(func(c *AppConfig) *bool { return &c.Quiet })},
	{"NO_COLOR", []string{"no-color"}, boolSetter(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// resolveConfigFile returns the YAML path from --config or PROCBENCH_CONFIG.
func resolveConfigFile(cfg AppConfig, fs *flag.FlagSet) string {
	if isFlagSet(fs, "config") {
		return cfg.ConfigFile
	}
	return os.Getenv(EnvPrefix + "CONFIG")
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line. A value
// that does not parse is a ConfigError rather than being silently ignored.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(config, val); err != nil {
				return apperrors.NewConfigError("invalid %s%s=%q: %v", EnvPrefix, o.envKey, val, err)
			}
		}
	}
	return nil
}
