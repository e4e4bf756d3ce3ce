package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Meridiem is the AM/PM half of a 12-hour reminder time.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// Panel is how a reminder is surfaced in the UI.
type Panel string

const (
	PanelBanner Panel = "Banner"
	PanelAlert  Panel = "Alert"
	PanelModal  Panel = "Modal"
)

// Panels lists every panel style in cycling order.
var Panels = []Panel{PanelBanner, PanelAlert, PanelModal}

// Tone is the sound played alongside a reminder.
type Tone string

const (
	ToneDefault Tone = "Default"
	ToneChime   Tone = "Chime"
	ToneBell    Tone = "Bell"
)

// Tones lists every tone in cycling order.
var Tones = []Tone{ToneDefault, ToneChime, ToneBell}

// Settings is the user's notification and appearance preferences.
// Treat it as a value: every change goes through With and yields a new record.
type Settings struct {
	NotificationsEnabled bool     `yaml:"notifications_enabled"`
	NotificationTime     string   `yaml:"notification_time"` // "H:MM" on a 12-hour clock
	AmPm                 Meridiem `yaml:"am_pm"`
	Panel                Panel    `yaml:"notification_panel"`
	DarkMode             bool     `yaml:"dark_mode"`
	ShowSunday           bool     `yaml:"show_sunday"` // Sunday is the first column; false puts Monday first
	SoundEnabled         bool     `yaml:"sound_enabled"`
	Tone                 Tone     `yaml:"notification_tone"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		NotificationTime:     "09:00",
		AmPm:                 AM,
		Panel:                PanelBanner,
		DarkMode:             false,
		ShowSunday:           true,
		SoundEnabled:         true,
		Tone:                 ToneDefault,
	}
}

// With returns a copy of s with fn applied. s itself is never modified.
func (s Settings) With(fn func(*Settings)) Settings {
	next := s
	fn(&next)
	return next
}

// WeekStartsMonday reports whether the calendar's first column is Monday.
func (s Settings) WeekStartsMonday() bool {
	return !s.ShowSunday
}

// Validate checks enum fields and the reminder time format.
func (s Settings) Validate() error {
	switch s.AmPm {
	case AM, PM:
	default:
		return fmt.Errorf("settings.am_pm: invalid value %q (want AM or PM)", s.AmPm)
	}
	if !containsPanel(s.Panel) {
		return fmt.Errorf("settings.notification_panel: invalid value %q (want Banner, Alert or Modal)", s.Panel)
	}
	if !containsTone(s.Tone) {
		return fmt.Errorf("settings.notification_tone: invalid value %q (want Default, Chime or Bell)", s.Tone)
	}
	if _, _, ok := ParseClock(s.NotificationTime); !ok {
		return fmt.Errorf("settings.notification_time: invalid value %q (want H:MM)", s.NotificationTime)
	}
	return nil
}

// ReminderClock resolves the 12-hour reminder time to a 24-hour hour and
// minute. ok is false when the stored time cannot be parsed.
func (s Settings) ReminderClock() (hour, minute int, ok bool) {
	h, m, ok := ParseClock(s.NotificationTime)
	if !ok {
		return 0, 0, false
	}
	return To24Hour(h, s.AmPm), m, true
}

// ReminderLabel renders the reminder time as "9:00 AM".
func (s Settings) ReminderLabel() string {
	h, m, ok := ParseClock(s.NotificationTime)
	if !ok {
		return s.NotificationTime + " " + string(s.AmPm)
	}
	return fmt.Sprintf("%d:%02d %s", h, m, s.AmPm)
}

// ParseClock parses "H:MM" or "HH:MM". Hours 0-23 are accepted so that
// values like "09:00" or "00:30" round-trip; minutes must be 0-59.
func ParseClock(v string) (hour, minute int, ok bool) {
	hs, ms, found := strings.Cut(strings.TrimSpace(v), ":")
	if !found || hs == "" || len(ms) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// To24Hour converts a 12-hour clock hour to 24-hour form.
// PM adds twelve below noon; 12 AM becomes midnight.
func To24Hour(h int, mer Meridiem) int {
	switch {
	case mer == PM && h < 12:
		return h + 12
	case mer == AM && h == 12:
		return 0
	}
	return h
}

// FormatClock renders hour and minute as "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Toggle flips between AM and PM.
func (m Meridiem) Toggle() Meridiem {
	if m == PM {
		return AM
	}
	return PM
}

// Next returns the panel after p in cycling order.
func (p Panel) Next() Panel {
	for i, v := range Panels {
		if v == p {
			return Panels[(i+1)%len(Panels)]
		}
	}
	return PanelBanner
}

// Next returns the tone after t in cycling order.
func (t Tone) Next() Tone {
	for i, v := range Tones {
		if v == t {
			return Tones[(i+1)%len(Tones)]
		}
	}
	return ToneDefault
}

func containsPanel(p Panel) bool {
	for _, v := range Panels {
		if v == p {
			return true
		}
	}
	return false
}

func containsTone(t Tone) bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}
