package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Output: &buf, JSONFormat: true})
	ctx := WithContext(context.Background(), l)

	Meeting(ctx, 42).Warn("report section missing", "field", "clarity")

	out := buf.String()
	if !strings.Contains(out, `"meeting_id":42`) {
		t.Errorf("expected meeting_id attribute, got %s", out)
	}
	if !strings.Contains(out, `"field":"clarity"`) {
		t.Errorf("expected field attribute, got %s", out)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected slog.Default() for a context without logger")
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Output: &buf, JSONFormat: true})
	ctx := WithContext(context.Background(), WithFields(l, map[string]any{"job_id": "j-1"}))

	Debug(ctx, "debug line")
	Info(ctx, "info line")
	Warn(ctx, "report sections missing", "fields", []string{"clarity"})
	Error(ctx, "error line")
	ErrorErr(ctx, "report generation failed", errors.New("llm down"))
	With(ctx, "url", "https://cdn.example.com").Info("downloaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, `"job_id":"j-1"`) {
			t.Errorf("line without job_id: %s", line)
		}
	}
	if !strings.Contains(lines[2], `"level":"WARN"`) || !strings.Contains(lines[2], `"fields":["clarity"]`) {
		t.Errorf("warn line = %s", lines[2])
	}
	if !strings.Contains(lines[4], `"error":"llm down"`) {
		t.Errorf("ErrorErr line = %s", lines[4])
	}
	if !strings.Contains(lines[5], `"url":"https://cdn.example.com"`) {
		t.Errorf("With line = %s", lines[5])
	}
}
