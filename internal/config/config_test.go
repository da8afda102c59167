package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.FallbackMaxID != defaultFallbackMaxID {
		t.Fatalf("FallbackMaxID = %d, want %d", cfg.FallbackMaxID, defaultFallbackMaxID)
	}
	if cfg.Transition != 180*time.Millisecond {
		t.Fatalf("Transition = %v, want 180ms", cfg.Transition)
	}
	if !cfg.DiscardStale {
		t.Fatalf("DiscardStale = false, want true")
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "  http://localhost:8000/api/v2  "
fallback_max_id = 151
start_id = 25
transition_ms = 250
request_timeout_seconds = 3
requests_per_second = 1.5
burst = 4
discard_stale = false
log_file = "  ~/logs/dexter.log  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://localhost:8000/api/v2" {
		t.Fatalf("APIBase = %q", cfg.APIBase)
	}
	if cfg.FallbackMaxID != 151 || cfg.StartID != 25 {
		t.Fatalf("FallbackMaxID/StartID = %d/%d, want 151/25", cfg.FallbackMaxID, cfg.StartID)
	}
	if cfg.Transition != 250*time.Millisecond {
		t.Fatalf("Transition = %v, want 250ms", cfg.Transition)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if cfg.RequestsPerSecond != 1.5 || cfg.Burst != 4 {
		t.Fatalf("RequestsPerSecond/Burst = %v/%d, want 1.5/4", cfg.RequestsPerSecond, cfg.Burst)
	}
	if cfg.DiscardStale {
		t.Fatalf("DiscardStale = true, want false")
	}
	if !strings.HasPrefix(cfg.LogFile, home) || !strings.HasSuffix(cfg.LogFile, "dexter.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_NonPositiveValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "   "
fallback_max_id = 0
start_id = -4
transition_ms = -1
burst = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg.APIBase != def.APIBase || cfg.FallbackMaxID != def.FallbackMaxID || cfg.StartID != def.StartID {
		t.Fatalf("cfg = %#v, want defaults %#v", cfg, def)
	}
	if cfg.Transition != def.Transition || cfg.Burst != def.Burst {
		t.Fatalf("Transition/Burst = %v/%d, want %v/%d", cfg.Transition, cfg.Burst, def.Transition, def.Burst)
	}
}

func TestLoad_EmptyLogFileDisablesLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_file = ""`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_base = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
