// Package config handles configuration loading and defaults for tasktrack.
// Configuration is loaded from XDG-compliant paths (typically ~/.config/tasktrack/config.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"tasktrack/internal/fsutil"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const appName = "tasktrack"

// Config represents the application configuration.
type Config struct {
	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// UX customizes user experience settings
	UX UXConfig `yaml:"ux,omitempty"`

	// Settings holds the user-facing notification and appearance preferences
	Settings Settings `yaml:"settings"`

	// Seed selects how the task store is populated at startup
	Seed SeedConfig `yaml:"seed,omitempty"`

	// Log configures diagnostic logging
	Log LogConfig `yaml:"log,omitempty"`
}

// ThemeConfig overrides palette colors. Empty values fall back to the
// light or dark palette selected by Settings.DarkMode.
type ThemeConfig struct {
	Primary    string `yaml:"primary,omitempty"`
	Accent     string `yaml:"accent,omitempty"`
	Muted      string `yaml:"muted,omitempty"`
	Background string `yaml:"background,omitempty"`
	Text       string `yaml:"text,omitempty"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "tab", "j,down"
type KeysConfig struct {
	// Global keys
	Quit     string `yaml:"quit,omitempty"`      // default: "q,ctrl+c"
	Help     string `yaml:"help,omitempty"`      // default: "?"
	NextPane string `yaml:"next_pane,omitempty"` // default: "tab"
	Pane1    string `yaml:"pane_1,omitempty"`    // default: "1"
	Pane2    string `yaml:"pane_2,omitempty"`    // default: "2"
	Pane3    string `yaml:"pane_3,omitempty"`    // default: "3"
	Settings string `yaml:"settings,omitempty"`  // default: ","

	// Navigation keys
	Up     string `yaml:"up,omitempty"`     // default: "k,up"
	Down   string `yaml:"down,omitempty"`   // default: "j,down"
	Left   string `yaml:"left,omitempty"`   // default: "h,left"
	Right  string `yaml:"right,omitempty"`  // default: "l,right"
	Top    string `yaml:"top,omitempty"`    // default: "g"
	Bottom string `yaml:"bottom,omitempty"` // default: "G"

	// Calendar keys
	PrevMonth string `yaml:"prev_month,omitempty"` // default: "[,pgup"
	NextMonth string `yaml:"next_month,omitempty"` // default: "],pgdown"
	Today     string `yaml:"today,omitempty"`      // default: "t"
	SelectDay string `yaml:"select_day,omitempty"` // default: "enter,space"

	// Task keys
	AddTask    string `yaml:"add_task,omitempty"`    // default: "a"
	ToggleTask string `yaml:"toggle_task,omitempty"` // default: "d,enter,space"
	DeleteTask string `yaml:"delete_task,omitempty"` // default: "x"

	// Stats keys
	CycleView   string `yaml:"cycle_view,omitempty"`   // default: "v"
	CustomRange string `yaml:"custom_range,omitempty"` // default: "c"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Cancel  string `yaml:"cancel,omitempty"`  // default: "esc"

	// Undo/Redo keys
	Undo string `yaml:"undo,omitempty"` // default: "ctrl+z,u"
	Redo string `yaml:"redo,omitempty"` // default: "ctrl+y"
}

// UXConfig defines user experience settings.
type UXConfig struct {
	// ConfirmDeletions shows confirmation dialogs before deleting items
	ConfirmDeletions bool `yaml:"confirm_deletions,omitempty"` // default: true

	// ShowOnboarding shows welcome screen when the store starts empty
	ShowOnboarding bool `yaml:"show_onboarding,omitempty"` // default: true

	// NarrowLayoutThreshold is the terminal width below which to use stacked layout
	NarrowLayoutThreshold int `yaml:"narrow_layout_threshold,omitempty"` // default: 100

	// DesktopNotifications also sends reminders through the OS notifier
	DesktopNotifications bool `yaml:"desktop_notifications,omitempty"` // default: true
}

// SeedConfig selects the startup seeding strategy.
type SeedConfig struct {
	// Strategy is one of sample, none, fixture, taskwarrior, todoist
	Strategy string `yaml:"strategy,omitempty"` // default: "sample"

	// Path is the input file for fixture/taskwarrior/todoist
	Path string `yaml:"path,omitempty"`

	// Days is how many trailing days the sample seeder fills
	Days int `yaml:"days,omitempty"` // default: 30
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level,omitempty"` // default: "info"

	// File receives log output while the TUI owns the terminal
	File string `yaml:"file,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			// Empty values mean "use the palette for the current mode"
		},
		Keys: KeysConfig{
			// Defaults are empty strings, which means use built-in defaults
		},
		UX: UXConfig{
			ConfirmDeletions:      true,
			ShowOnboarding:        true,
			NarrowLayoutThreshold: 100,
			DesktopNotifications:  true,
		},
		Settings: DefaultSettings(),
		Seed: SeedConfig{
			Strategy: "sample",
			Days:     30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the configuration directory path (XDG compliant).
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the default path to the config file.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return expanded
}

// Load reads configuration from the default path, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from path, merging with defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	path = ExpandPath(path)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	var doc yaml.Node
	_ = yaml.Unmarshal(data, &doc) // best-effort; fall back to conservative merge if this fails

	cfg.mergeFromYAML(&userCfg, &doc)

	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func setIfNonEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// mergeNonEmpty applies non-empty values from other to c.
// It intentionally does not touch booleans (those require presence-aware merging).
func (c *Config) mergeNonEmpty(other *Config) {
	setIfNonEmpty(&c.Theme.Primary, other.Theme.Primary)
	setIfNonEmpty(&c.Theme.Accent, other.Theme.Accent)
	setIfNonEmpty(&c.Theme.Muted, other.Theme.Muted)
	setIfNonEmpty(&c.Theme.Background, other.Theme.Background)
	setIfNonEmpty(&c.Theme.Text, other.Theme.Text)

	k, o := &c.Keys, &other.Keys
	for _, pair := range []struct {
		dst *string
		v   string
	}{
		{&k.Quit, o.Quit}, {&k.Help, o.Help}, {&k.NextPane, o.NextPane},
		{&k.Pane1, o.Pane1}, {&k.Pane2, o.Pane2}, {&k.Pane3, o.Pane3},
		{&k.Settings, o.Settings},
		{&k.Up, o.Up}, {&k.Down, o.Down}, {&k.Left, o.Left}, {&k.Right, o.Right},
		{&k.Top, o.Top}, {&k.Bottom, o.Bottom},
		{&k.PrevMonth, o.PrevMonth}, {&k.NextMonth, o.NextMonth},
		{&k.Today, o.Today}, {&k.SelectDay, o.SelectDay},
		{&k.AddTask, o.AddTask}, {&k.ToggleTask, o.ToggleTask}, {&k.DeleteTask, o.DeleteTask},
		{&k.CycleView, o.CycleView}, {&k.CustomRange, o.CustomRange},
		{&k.Confirm, o.Confirm}, {&k.Cancel, o.Cancel},
		{&k.Undo, o.Undo}, {&k.Redo, o.Redo},
	} {
		setIfNonEmpty(pair.dst, pair.v)
	}

	if other.UX.NarrowLayoutThreshold > 0 {
		c.UX.NarrowLayoutThreshold = other.UX.NarrowLayoutThreshold
	}

	setIfNonEmpty(&c.Settings.NotificationTime, other.Settings.NotificationTime)
	if other.Settings.AmPm != "" {
		c.Settings.AmPm = other.Settings.AmPm
	}
	if other.Settings.Panel != "" {
		c.Settings.Panel = other.Settings.Panel
	}
	if other.Settings.Tone != "" {
		c.Settings.Tone = other.Settings.Tone
	}

	setIfNonEmpty(&c.Seed.Strategy, other.Seed.Strategy)
	setIfNonEmpty(&c.Seed.Path, other.Seed.Path)
	if other.Seed.Days > 0 {
		c.Seed.Days = other.Seed.Days
	}

	setIfNonEmpty(&c.Log.Level, other.Log.Level)
	setIfNonEmpty(&c.Log.File, other.Log.File)
}

func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	c.mergeNonEmpty(other)

	// Without a parsed document we cannot tell an explicit false from an
	// omitted key, so booleans keep their defaults.
	if doc == nil || len(doc.Content) == 0 {
		return
	}

	bools := []struct {
		path []string
		dst  *bool
		v    bool
	}{
		{[]string{"ux", "confirm_deletions"}, &c.UX.ConfirmDeletions, other.UX.ConfirmDeletions},
		{[]string{"ux", "show_onboarding"}, &c.UX.ShowOnboarding, other.UX.ShowOnboarding},
		{[]string{"ux", "desktop_notifications"}, &c.UX.DesktopNotifications, other.UX.DesktopNotifications},
		{[]string{"settings", "notifications_enabled"}, &c.Settings.NotificationsEnabled, other.Settings.NotificationsEnabled},
		{[]string{"settings", "dark_mode"}, &c.Settings.DarkMode, other.Settings.DarkMode},
		{[]string{"settings", "show_sunday"}, &c.Settings.ShowSunday, other.Settings.ShowSunday},
		{[]string{"settings", "sound_enabled"}, &c.Settings.SoundEnabled, other.Settings.SoundEnabled},
	}
	for _, b := range bools {
		if yamlHasPath(doc, b.path...) {
			*b.dst = b.v
		}
	}
}

func yamlHasPath(doc *yaml.Node, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	// Document -> root mapping.
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value == key {
				next = v
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the configuration to path atomically.
func (c *Config) SaveTo(path string) error {
	path = ExpandPath(path)
	if path == "" {
		return nil
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0600)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serialize config: %w", err)
	}
	return data, nil
}
