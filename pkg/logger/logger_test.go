package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestCriticalLevelName(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")

	log.Critical("db: connection lost", "attempt", 3)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line, got %q", buf.String())
	}
	if line["level"] != "CRITICAL" {
		t.Fatalf("expected CRITICAL level, got %v", line["level"])
	}
}

func TestBusinessErrorSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "text")

	log.BusinessError("events.rsvp: not found", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing logged for nil error, got %q", buf.String())
	}

	log.With("user_id", "stu-1").BusinessError("events.rsvp: not found", errors.New("event not found"))
	if !bytes.Contains(buf.Bytes(), []byte("user_id=stu-1")) {
		t.Fatalf("expected attrs carried, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("", "development") != slog.LevelDebug {
		t.Fatalf("expected debug in development")
	}
	if parseLevel("", "production") != slog.LevelInfo {
		t.Fatalf("expected info in production")
	}
	if parseLevel("fatal", "") != LevelCritical {
		t.Fatalf("expected critical for fatal")
	}
}

func TestErrorKindsAreTagged(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "json")

	log.InternalError("notifications.fanout: insert failed", errors.New("conn reset"), "event_id", "e-1")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line, got %q", buf.String())
	}
	if line["error_kind"] != "internal" || line["level"] != "ERROR" || line["event_id"] != "e-1" {
		t.Fatalf("unexpected line %v", line)
	}
}
