package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"campus-portal-go/pkg/logger"
)

func TestLoadMergesEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.env")
	contents := "POLL_INTERVAL=30s\nCAMPUS_TIMEZONE=Asia/Kolkata\nHTTP_PORT=9999\nCORS_ORIGINS=http://a.test, http://b.test\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("POLL_INTERVAL", "")
	os.Unsetenv("POLL_INTERVAL")
	t.Setenv("CAMPUS_TIMEZONE", "")
	os.Unsetenv("CAMPUS_TIMEZONE")
	t.Setenv("CORS_ORIGINS", "")
	os.Unsetenv("CORS_ORIGINS")

	cfg, err := Load(logger.Nop(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "7070" {
		t.Fatalf("expected environment to win, got %s", cfg.HTTPPort)
	}
	if cfg.Portal.PollInterval != 30*time.Second {
		t.Fatalf("expected poll interval from file, got %s", cfg.Portal.PollInterval)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.Portal.Location().String() != "Asia/Kolkata" {
		t.Fatalf("unexpected location %s", cfg.Portal.Location())
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := PortalConfig{CampusTimezone: "Mars/Olympus"}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC fallback")
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DBConfig{Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}
	expected := "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC"
	if cfg.GetDSN() != expected {
		t.Fatalf("expected %q, got %q", expected, cfg.GetDSN())
	}
	cfg.DSN = "postgres://x"
	if cfg.GetDSN() != "postgres://x" {
		t.Fatalf("expected explicit DSN")
	}
}
