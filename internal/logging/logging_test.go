package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
}

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Config{Level: level, Output: &buf, Prefix: "test"})
	l.now = fixedClock
	return l, &buf
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = '%s', expected '%s'", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"debug", LevelDebug, true},
		{"DEBUG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"WARNING", LevelWarn, true},
		{"error", LevelError, true},
		{"unknown", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseLevel('%s') = (%d, %v), expected (%d, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestNew_DefaultOutput(t *testing.T) {
	l := New(Config{})
	if l.output == nil {
		t.Error("expected default output to be set")
	}
}

func TestLogger_Format(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	l.Info("loaded %d lines", 3)

	want := "2024-03-01T12:30:45.000 [INFO] test: loaded 3 lines\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	out := buf.String()
	if strings.Contains(out, "debug") || strings.Contains(out, "info") {
		t.Errorf("messages below WARN should be filtered: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("expected WARN and ERROR lines: %q", out)
	}

	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("expected debug message after SetLevel")
	}
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)

	l.WithComponent("buffer").WithFields(map[string]any{"doc": "abc", "bytes": 10}).Info("open")

	if !strings.HasSuffix(buf.String(), "open {bytes=10, component=buffer, doc=abc}\n") {
		t.Errorf("unexpected field rendering: %q", buf.String())
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)

	_ = l.WithField("k", "v")
	l.Info("plain")

	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestLogger_SetOutput(t *testing.T) {
	l, first := newTestLogger(LevelInfo)
	var second bytes.Buffer

	l.SetOutput(&second)
	l.Info("moved")

	if first.Len() != 0 {
		t.Error("expected nothing written to the original output")
	}
	if !strings.Contains(second.String(), "moved") {
		t.Error("expected message in new output")
	}
}

func TestNull(t *testing.T) {
	l := Null()
	if l.Enabled(LevelError) {
		t.Error("null logger should not be enabled")
	}
	l.Error("dropped")
	l.WithField("a", 1).Info("dropped")
}
