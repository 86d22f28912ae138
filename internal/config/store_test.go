package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "eduportal") {
		t.Errorf("GetConfigDir() = %v, should contain 'eduportal'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "eduportal"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Setenv(PathEnvVar, "/etc/eduportal.yaml")
	configPath, _ = GetConfigPath()
	if configPath != "/etc/eduportal.yaml" {
		t.Errorf("GetConfigPath() = %v, want override", configPath)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Version != 1 {
		t.Errorf("New().Version = %v, want 1", cfg.Version)
	}
	if cfg.Preferences.DefaultView != "/" {
		t.Errorf("DefaultView = %q, want /", cfg.Preferences.DefaultView)
	}
	if cfg.Preferences.TutorialSort != "popular" {
		t.Errorf("TutorialSort = %q, want popular", cfg.Preferences.TutorialSort)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("New().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"version", func(c *Config) { c.Version = 2 }, "unsupported config version"},
		{"view", func(c *Config) { c.Preferences.DefaultView = "/courses" }, "default_view"},
		{"layout", func(c *Config) { c.Preferences.TutorialView = "table" }, "tutorial_view"},
		{"sort", func(c *Config) { c.Preferences.TutorialSort = "oldest" }, "tutorial_sort"},
		{"recent", func(c *Config) { c.Preferences.RecentSearchLimit = 0 }, "recent_search_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Preferences.RecentSearchLimit != 5 {
		t.Errorf("RecentSearchLimit = %d, want 5", cfg.Preferences.RecentSearchLimit)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.Preferences.DarkMode = true
	cfg.Preferences.DefaultView = "/week-one"
	cfg.Preferences.TutorialView = "list"
	cfg.Log.Level = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# EduPortal Configuration File") {
		t.Error("saved file should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if !loaded.Preferences.DarkMode || loaded.Preferences.DefaultView != "/week-one" {
		t.Errorf("loaded preferences = %+v", loaded.Preferences)
	}
	if loaded.Preferences.TutorialView != "list" {
		t.Errorf("TutorialView = %q, want list", loaded.Preferences.TutorialView)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", loaded.Log.Level)
	}
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := New().SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	t.Setenv("EDUPORTAL_PREFERENCES_TUTORIAL_SORT", "rating")
	t.Setenv("EDUPORTAL_PREFERENCES_DARK_MODE", "true")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Preferences.TutorialSort != "rating" {
		t.Errorf("TutorialSort = %q, want rating", cfg.Preferences.TutorialSort)
	}
	if !cfg.Preferences.DarkMode {
		t.Error("DarkMode should be overridden to true")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "version: 1\npreferences:\n  default_view: /nowhere\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should reject an unknown default_view")
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Init(path, false); !errors.Is(err, ErrExists) {
		t.Errorf("second Init() error = %v, want ErrExists", err)
	}
	if err := Init(path, true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}
}

func TestLogFile(t *testing.T) {
	cfg := New()
	cfg.Log.File = "/var/log/portal.log"
	if got, _ := cfg.LogFile(); got != "/var/log/portal.log" {
		t.Errorf("LogFile() = %q", got)
	}

	cfg.Log.File = ""
	got, err := cfg.LogFile()
	if err != nil {
		t.Fatalf("LogFile() error = %v", err)
	}
	if filepath.Base(got) != "eduportal.log" {
		t.Errorf("LogFile() = %q, want eduportal.log in config dir", got)
	}
}
