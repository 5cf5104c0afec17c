package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return l
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Warn("warned")
	l.Error("failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at INFO level: %q", out)
	}
	for _, want := range []string{
		"[03:04:05.006 INFO] shown 2\n",
		"[03:04:05.006 WARN] warned\n",
		"[03:04:05.006 ERROR] failed\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got %q", want, out)
		}
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, true)

	if l.level != LevelDebug {
		t.Fatalf("level = %v, want DEBUG", l.level)
	}
	l.Debug("walking %s", "/tmp")
	if !strings.Contains(buf.String(), "DEBUG] walking /tmp") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"Error", LevelError},
		{"off", LevelNone},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		l := New(&bytes.Buffer{}, false, false)
		l.SetLevel(tt.in)
		if l.level != tt.want {
			t.Errorf("SetLevel(%q) = %v, want %v", tt.in, l.level, tt.want)
		}
	}
}

func TestLevelNoneSilencesErrors(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false).WithLevel(LevelNone)
	l.Error("nope")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
