package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// writeConfig writes content to $XDG_CONFIG_HOME/tasktrack/config.yaml in a temp dir.
func writeConfig(t *testing.T, content string) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	dir := filepath.Join(tempDir, "tasktrack")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.UX.ConfirmDeletions {
		t.Error("UX.ConfirmDeletions should default to true")
	}
	if cfg.Seed.Strategy != "sample" || cfg.Seed.Days != 30 {
		t.Errorf("Seed = %+v, want sample/30", cfg.Seed)
	}
	if err := cfg.Settings.Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.NotificationsEnabled || s.NotificationTime != "09:00" || s.AmPm != AM {
		t.Errorf("notification defaults = %+v", s)
	}
	if s.Panel != PanelBanner || s.Tone != ToneDefault || !s.SoundEnabled {
		t.Errorf("panel/tone defaults = %+v", s)
	}
	if s.DarkMode || !s.ShowSunday || s.WeekStartsMonday() {
		t.Errorf("appearance defaults = %+v", s)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Settings != DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", cfg.Settings)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	writeConfig(t, `
theme:
  primary: "#FF0000"
keys:
  quit: "ctrl+q"
settings:
  notification_time: "7:30"
  am_pm: PM
  notification_panel: Modal
seed:
  strategy: none
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme.Primary != "#FF0000" {
		t.Errorf("Theme.Primary = %q", cfg.Theme.Primary)
	}
	if cfg.Keys.Quit != "ctrl+q" {
		t.Errorf("Keys.Quit = %q", cfg.Keys.Quit)
	}
	if cfg.Settings.Panel != PanelModal || cfg.Settings.AmPm != PM {
		t.Errorf("Settings = %+v", cfg.Settings)
	}
	// Unset booleans keep their defaults.
	if !cfg.Settings.NotificationsEnabled || !cfg.Settings.ShowSunday {
		t.Errorf("omitted booleans lost defaults: %+v", cfg.Settings)
	}
	if cfg.Seed.Strategy != "none" || cfg.Seed.Days != 30 {
		t.Errorf("Seed = %+v", cfg.Seed)
	}
}

func TestLoad_ExplicitFalseOverridesDefault(t *testing.T) {
	writeConfig(t, `
ux:
  confirm_deletions: false
settings:
  notifications_enabled: false
  show_sunday: false
  sound_enabled: false
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UX.ConfirmDeletions {
		t.Error("UX.ConfirmDeletions should be false")
	}
	if cfg.Settings.NotificationsEnabled || cfg.Settings.SoundEnabled {
		t.Errorf("Settings = %+v, want notifications and sound off", cfg.Settings)
	}
	if !cfg.Settings.WeekStartsMonday() {
		t.Error("show_sunday: false should start weeks on Monday")
	}
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad panel", "settings:\n  notification_panel: Popup\n", "notification_panel"},
		{"bad tone", "settings:\n  notification_tone: Gong\n", "notification_tone"},
		{"bad meridiem", "settings:\n  am_pm: XM\n", "am_pm"},
		{"bad time", "settings:\n  notification_time: noon\n", "notification_time"},
		{"bad yaml", "settings: [\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Settings = cfg.Settings.With(func(s *Settings) {
		s.DarkMode = true
		s.NotificationsEnabled = false
	})
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.Settings.DarkMode || loaded.Settings.NotificationsEnabled {
		t.Errorf("reloaded Settings = %+v", loaded.Settings)
	}
}

func TestLoadFrom_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	if err := os.WriteFile(filepath.Join(home, "tt.yaml"), []byte("seed:\n  days: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom("~/tt.yaml")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Seed.Days != 7 {
		t.Errorf("Seed.Days = %d, want 7", cfg.Seed.Days)
	}
}
