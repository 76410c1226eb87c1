package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/procbench/internal/config"
	apperrors "github.com/agbru/procbench/internal/errors"
	"github.com/agbru/procbench/internal/sysmon"
	"github.com/agbru/procbench/internal/workload"
)

var csvLine = regexp.MustCompile(`^RESULT_CSV:-?\d+\.\d{4},-?\d+\.\d{2},\d+\.\d{2}$`)

type steadyMonitor struct {
	mu  sync.Mutex
	rss uint64
}

func (m *steadyMonitor) Snapshot() sysmon.ProcessSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rss += 1 << 20
	return sysmon.ProcessSnapshot{ResidentMemoryBytes: m.rss, CPUPercent: 25}
}

func steadyFactory() (sysmon.Monitor, error) { return &steadyMonitor{}, nil }

func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"procbench", "--no-color"}, args...), &errBuf,
		WithMonitorFactory(steadyFactory),
		WithHostStats(nil),
	)
	require.NoError(t, err)
	return a, &errBuf
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestRun_CPU(t *testing.T) {
	a, _ := newTestApp(t, "--workload", "cpu", "--start", "2", "--limit", "30", "--interval", "1ms")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out.String(), "Primes found: 10")
	assert.Regexp(t, csvLine, lastLine(out.String()))
}

func TestRun_ConcurrentQuiet(t *testing.T) {
	a, _ := newTestApp(t, "--workload", "concurrent", "--limit", "30", "--workers", "4", "-q")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	require.Equal(t, apperrors.ExitSuccess, code)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1, "quiet mode prints only the CSV line")
	assert.Regexp(t, csvLine, lines[0])
}

func TestRun_IOEmptyFileAndMetrics(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "empty.bin")
	prom := filepath.Join(dir, "run.prom")
	a, _ := newTestApp(t, "--workload", "io", "--file", data, "--file-size-mb", "0", "--metrics-file", prom)
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out.String(), "Bytes read: 0")
	assert.Contains(t, out.String(), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	assert.Regexp(t, csvLine, lastLine(out.String()))

	body, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(body), `procbench_elapsed_seconds{workload="io"}`)
}

func TestRun_MetricsExportFailureHasNoCSV(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "missing", "run.prom")
	a, errBuf := newTestApp(t, "--limit", "30", "-q", "--metrics-file", prom)
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	assert.Equal(t, apperrors.ExitErrorGeneric, code)
	assert.NotContains(t, out.String(), "RESULT_CSV")
	assert.Contains(t, errBuf.String(), "write metrics textfile")
}

func TestRun_PreparationFailureHasNoCSV(t *testing.T) {
	dir := t.TempDir()
	a, errBuf := newTestApp(t, "--workload", "io", "--file", filepath.Join(dir, "missing", "data.bin"), "--file-size-mb", "0")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	assert.Equal(t, apperrors.ExitErrorStartup, code)
	assert.NotContains(t, out.String(), "RESULT_CSV")
	assert.Contains(t, errBuf.String(), "Error:")
}

func TestRun_StartupFailure(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"procbench", "--limit", "30", "-q"}, &errBuf,
		WithMonitorFactory(func() (sysmon.Monitor, error) {
			return nil, apperrors.StartupError{Op: "resolve current process", Cause: errors.New("denied")}
		}),
		WithHostStats(nil),
	)
	require.NoError(t, err)
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	assert.Equal(t, apperrors.ExitErrorStartup, code)
	assert.Empty(t, out.String())
}

func TestNew_ConfigErrors(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"procbench", "--workload", "gpu"}, &errBuf)
	assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCodeFor(err))
	assert.Equal(t, apperrors.ExitErrorConfig, ReportStartupError(err, &errBuf))

	_, err = New([]string{"procbench", "--help"}, &errBuf)
	assert.True(t, IsHelpError(err))
}

func TestBuildWorkload(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cfg  config.AppConfig
		want workload.Workload
	}{
		{config.AppConfig{Workload: "cpu", Start: 2, Limit: 30}, workload.PrimeCount{Start: 2, End: 30}},
		{config.AppConfig{Workload: "concurrent", Start: 2, Limit: 30, Workers: 4, SinkBuffer: 8},
			workload.ConcurrentPrimeCount{Start: 2, End: 30, Workers: 4, SinkBuffer: 8}},
		{config.AppConfig{Workload: "io", File: "f", ChunkSize: 4, Hash: "xxhash"},
			workload.FileHash{Path: "f", ChunkSize: 4, Algorithm: workload.HashXXHash}},
	}
	for _, tt := range tests {
		got, err := BuildWorkload(tt.cfg)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := BuildWorkload(config.AppConfig{Workload: "gpu"})
	var cfgErr apperrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	assert.True(t, HasVersionFlag([]string{"--version"}))
	assert.True(t, HasVersionFlag([]string{"-q", "-version"}))
	assert.False(t, HasVersionFlag([]string{"--", "--version"}))
	assert.False(t, HasVersionFlag(nil))

	var buf bytes.Buffer
	PrintVersion(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "procbench "+Version))
}
