package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eduportal.log")

	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	LogRoute("/", "/week-one")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Route changed") {
		t.Errorf("log output %q missing message", out)
	}
	if !strings.Contains(out, SessionID()) {
		t.Errorf("log output %q missing session id", out)
	}
}

func TestInitialize_EnvLevel(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := Initialize("", filepath.Join(t.TempDir(), "x.log")); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogMount("week-one", "m-1")
	LogTransition("checklist", "2", "completed")
	LogPlayer("mount", "qz0aGYrrlhU")
	LogUnmount("week-one", "m-1")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	player := entries[2]
	if player.Message != "Player event" {
		t.Errorf("entry[2].Message = %q", player.Message)
	}
	if got := player.ContextMap()["source_id"]; got != "qz0aGYrrlhU" {
		t.Errorf("source_id = %v", got)
	}
	if entries[1].ContextMap()["component"] != "checklist" {
		t.Errorf("transition fields = %v", entries[1].ContextMap())
	}
}

func TestNewMountID_Unique(t *testing.T) {
	a, b := NewMountID(), NewMountID()
	if a == "" || a == b {
		t.Errorf("NewMountID() returned %q and %q", a, b)
	}
}
