package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points both config locations at an empty temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	for _, key := range []string{"LOG_LEVEL", "LOG_FILE", "REDIRECT_DELAY", "BASE_URL", "TIMEZONE"} {
		t.Setenv("EVENTIFY_"+key, "")
		_ = os.Unsetenv("EVENTIFY_" + key)
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got := GlobalPath(); got != "/custom/config/eventify/eventify.yml" {
			t.Errorf("GlobalPath() = %v", got)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if !strings.HasSuffix(got, filepath.Join(".config", "eventify", "eventify.yml")) {
			t.Errorf("GlobalPath() should end with .config/eventify/eventify.yml, got %v", got)
		}
	})
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "eventify.yml" {
		t.Errorf("ProjectPath() = %v, want eventify.yml", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.RedirectDelay != DefaultRedirectDelay {
		t.Errorf("RedirectDelay = %v, want %v", cfg.RedirectDelay, DefaultRedirectDelay)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, DefaultTimezone)
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	global := Defaults()
	global.LogLevel = "debug"
	global.RedirectDelay = 5 * time.Second
	global.BaseURL = "https://global.example"
	if err := WriteGlobal(global); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	if err := os.WriteFile(ProjectPath(), []byte("base_url: https://project.example\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	t.Setenv("EVENTIFY_REDIRECT_DELAY", "750ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want global value debug", cfg.LogLevel)
	}
	if cfg.BaseURL != "https://project.example" {
		t.Errorf("BaseURL = %q, want project value", cfg.BaseURL)
	}
	if cfg.RedirectDelay != 750*time.Millisecond {
		t.Errorf("RedirectDelay = %v, want env value 750ms", cfg.RedirectDelay)
	}
}

func TestLoad_RejectsNegativeDelay(t *testing.T) {
	isolate(t)
	t.Setenv("EVENTIFY_REDIRECT_DELAY", "-1s")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a negative redirect delay")
	}
}

func TestLoad_RejectsZeroDelay(t *testing.T) {
	isolate(t)
	t.Setenv("EVENTIFY_REDIRECT_DELAY", "0s")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject a zero redirect delay")
	}
	if !strings.Contains(err.Error(), "redirect_delay must be > 0") {
		t.Errorf("error = %q, want redirect_delay message", err)
	}
}

func TestLoad_RejectsUnknownTimezone(t *testing.T) {
	isolate(t)
	t.Setenv("EVENTIFY_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject an unknown timezone")
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		tz   string
		want string
	}{
		{"", time.Local.String()},
		{"local", time.Local.String()},
		{"UTC", "UTC"},
	}
	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			loc, err := (&Config{Timezone: tt.tz}).Location()
			if err != nil {
				t.Fatalf("Location() error = %v", err)
			}
			if loc.String() != tt.want {
				t.Errorf("Location() = %v, want %v", loc, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Error("Exists() = true, want false when no config files exist")
	}

	if err := WriteProject(Defaults()); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when project config exists")
	}
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)

	cfg := &Config{
		LogLevel:      "warn",
		LogFile:       "/tmp/eventify.log",
		RedirectDelay: 3 * time.Second,
		BaseURL:       "https://events.example",
		Timezone:      "UTC",
	}
	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	data, err := os.ReadFile(GlobalPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	for _, field := range []string{
		"log_level: warn",
		"log_file: /tmp/eventify.log",
		"redirect_delay: 3s",
		"base_url: https://events.example",
		"timezone: UTC",
	} {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}
