// Package logging wraps log/slog for the orrery commands. Records go to stderr
// as text; the level comes from ORRERY_LOG_LEVEL (DEBUG, INFO, WARN, ERROR).
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const LevelEnv = "ORRERY_LOG_LEVEL"

type Logger struct {
	*slog.Logger
}

func NewLogger() *Logger {
	return New(os.Stderr)
}

// New logs to w at the level named by ORRERY_LOG_LEVEL.
func New(w io.Writer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// Discard returns a logger that drops everything. Terminal front ends use it
// while they own the screen.
func Discard() *Logger {
	return New(io.Discard)
}

// LogWithContext attaches the run ID carried by ctx, if any.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if id := RunID(ctx); id != "" {
		args = append(args, "run", id)
	}
	l.Log(ctx, level, msg, args...)
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

type runIDKey struct{}

func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(LevelEnv)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
