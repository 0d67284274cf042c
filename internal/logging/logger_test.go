package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "warning", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"mixed case", "Info", slog.LevelInfo},
		{"invalid level", "LOUD", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.envValue)
			if got := levelFromEnv(); got != tt.expected {
				t.Errorf("levelFromEnv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRunIDAttached(t *testing.T) {
	t.Setenv(LevelEnv, "DEBUG")
	var buf bytes.Buffer
	log := New(&buf)

	ctx := WithRunID(context.Background(), "abc123")
	log.Info(ctx, "run started", "frames", 10)
	log.Error(ctx, "save failed", errors.New("disk full"))

	out := buf.String()
	for _, want := range []string{"msg=\"run started\"", "frames=10", "run=abc123", "error=\"disk full\""} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	t.Setenv(LevelEnv, "WARN")
	var buf bytes.Buffer
	log := New(&buf)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected nothing below WARN, got %q", buf.String())
	}
	log.Warn(context.Background(), "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record missing")
	}
}

func TestRunIDMissing(t *testing.T) {
	if id := RunID(context.Background()); id != "" {
		t.Errorf("expected empty run id, got %q", id)
	}
	Discard().Info(context.Background(), "dropped")
}
