package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/polkiloo/pressdesk/internal/config"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New(&config.Config{LogLevel: "info"})
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestLevels(t *testing.T) {
	debug := newLogger(&bytes.Buffer{}, "debug")
	if !debug.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}

	warn := newLogger(&bytes.Buffer{}, "WARN")
	if warn.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("did not expect info level with warn threshold")
	}

	fallback := newLogger(&bytes.Buffer{}, "verbose")
	if !fallback.Enabled(context.Background(), slog.LevelInfo) || fallback.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected unknown level to fall back to info")
	}
}

func TestServiceAttribute(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "info").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log line: %v", err)
	}
	if entry["service"] != "pressdesk" || entry["msg"] != "hello" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}
