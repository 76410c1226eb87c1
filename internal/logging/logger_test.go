package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("workload", "cpu"), "workload", "cpu"},
		{"Int", Int("workers", 8), "workers", 8},
		{"Int64", Int64("bytes", 1<<40), "bytes", int64(1 << 40)},
		{"Uint64", Uint64("rss", 12345678901234567890), "rss", uint64(12345678901234567890)},
		{"Float64", Float64("cpu", 97.5), "cpu", 97.5},
		{"Duration", Duration("interval", 10*time.Millisecond), "interval", 10 * time.Millisecond},
		{"Bool", Bool("quiet", true), "quiet", true},
		{"Err", Err(testErr), "error", testErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

// TestNewLogger tests the component-tagged logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "sampler")

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, "sampler") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestZerologAdapter_Levels covers Info, Error and Debug output.
func TestZerologAdapter_Levels(t *testing.T) {
	t.Run("Info with fields", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "test").Info("sampler started", Int("interval_ms", 10), String("workload", "io"))
		for _, want := range []string{"sampler started", "info", "10", "io"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output should contain %q, got: %s", want, buf.String())
			}
		}
	})

	t.Run("Error with cause", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "test").Error("workload failed", errors.New("unexpected EOF"), String("file", "data.bin"))
		for _, want := range []string{"workload failed", "unexpected EOF", "error", "data.bin"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output should contain %q, got: %s", want, buf.String())
			}
		}
	})

	t.Run("Debug respects level", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
		NewZerologAdapter(zl).Debug("tick", Float64("cpu", 12.5))
		if !strings.Contains(buf.String(), "tick") || !strings.Contains(buf.String(), "debug") {
			t.Errorf("Debug output missing content, got: %s", buf.String())
		}
	})
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"duration field", Field{Key: "d", Value: 1500 * time.Millisecond}, "1500"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

func TestZerologAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "orchestrator").With(String("run_id", "abc-123"))
	logger.Info("baseline taken")
	if !strings.Contains(buf.String(), "abc-123") {
		t.Errorf("child logger should carry run_id, got: %s", buf.String())
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	logger.Printf("formatted %s %d", "message", 42)
	logger.Println("hello", "world")

	output := buf.String()
	if !strings.Contains(output, "formatted message 42") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "hello world") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		" error ": zerolog.ErrorLevel,
		"warn":    zerolog.WarnLevel,
		"":        zerolog.WarnLevel,
		"verbose": zerolog.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewConsoleLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "app", "warn", true)
	logger.Info("hidden")
	logger.Error("shown", errors.New("boom"))

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info entry should be filtered at warn level, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("error entry should pass warn level, got: %s", buf.String())
	}
}

// TestStdLoggerAdapter covers the standard library fallback.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *StdLoggerAdapter)
		contains []string
	}{
		{"Info", func(l *StdLoggerAdapter) { l.Info("user action", String("user", "bob")) }, []string{"[INFO]", "user action", "user=bob"}},
		{"Error", func(l *StdLoggerAdapter) { l.Error("db failed", errors.New("timeout")) }, []string{"[ERROR]", "db failed", "timeout"}},
		{"Debug", func(l *StdLoggerAdapter) { l.Debug("trace", Int("line", 42)) }, []string{"[DEBUG]", "trace", "line=42"}},
		{"Printf", func(l *StdLoggerAdapter) { l.Printf("value is %d", 123) }, []string{"value is 123"}},
		{"Println", func(l *StdLoggerAdapter) { l.Println("a", "b", "c") }, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

// TestLoggerInterface verifies every implementation satisfies Logger.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
	var _ Logger = Nop{}
}
