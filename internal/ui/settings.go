package ui

import (
	"fmt"
	"strings"

	"tasktrack/internal/config"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsField identifies one row of the settings overlay.
type settingsField int

const (
	fieldNotifications settingsField = iota
	fieldTime
	fieldAmPm
	fieldPanel
	fieldDarkMode
	fieldShowSunday
	fieldSound
	fieldTone
	fieldCount
)

// SettingsOverlay edits the settings record. Every change produces a new
// record that is handed back to the app in a settingsChangedMsg.
type SettingsOverlay struct {
	settings config.Settings
	cursor   settingsField
	styles   *Styles
	width    int
	height   int

	editingTime bool
	input       textinput.Model
	err         string

	keys      SettingsKeyMap
	inputKeys InputKeyMap
}

// NewSettingsOverlay creates the overlay for the given settings.
func NewSettingsOverlay(s config.Settings, styles *Styles, keyCfg *config.KeysConfig) *SettingsOverlay {
	ti := textinput.New()
	ti.Placeholder = "H:MM"
	ti.CharLimit = 5
	ti.Width = 6

	return &SettingsOverlay{
		settings:  s,
		styles:    styles,
		input:     ti,
		keys:      NewSettingsKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetSize sets the overlay dimensions.
func (o *SettingsOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// SetStyles swaps the palette after a dark mode change.
func (o *SettingsOverlay) SetStyles(styles *Styles) {
	o.styles = styles
}

// Settings returns the record currently shown.
func (o *SettingsOverlay) Settings() config.Settings {
	return o.settings
}

// Reset discards any in-progress edit and shows s.
func (o *SettingsOverlay) Reset(s config.Settings) {
	o.settings = s
	o.editingTime = false
	o.err = ""
	o.input.Reset()
	o.input.Blur()
}

// IsEditing returns whether the reminder time input is active.
func (o *SettingsOverlay) IsEditing() bool {
	return o.editingTime
}

// ParseReminderTime validates a 12-hour "H:MM" entry and normalizes it to
// "HH:MM".
func ParseReminderTime(v string) (string, error) {
	h, m, ok := config.ParseClock(v)
	if !ok || h < 1 || h > 12 {
		return "", fmt.Errorf("invalid time %q (want H:MM, 1-12)", strings.TrimSpace(v))
	}
	return config.FormatClock(h, m), nil
}

// Update handles messages for the settings overlay.
func (o *SettingsOverlay) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)

	if o.editingTime {
		if ok {
			switch {
			case key.Matches(keyMsg, o.inputKeys.Confirm):
				v, err := ParseReminderTime(o.input.Value())
				if err != nil {
					o.err = err.Error()
					return nil
				}
				o.editingTime = false
				o.err = ""
				o.input.Blur()
				return o.apply(func(s *config.Settings) { s.NotificationTime = v })

			case key.Matches(keyMsg, o.inputKeys.Cancel):
				o.editingTime = false
				o.err = ""
				o.input.Blur()
				return nil
			}
		}
		var cmd tea.Cmd
		o.input, cmd = o.input.Update(msg)
		return cmd
	}

	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, o.keys.Close):
		return func() tea.Msg { return settingsClosedMsg{} }

	case key.Matches(keyMsg, o.keys.Up):
		o.cursor = (o.cursor + fieldCount - 1) % fieldCount

	case key.Matches(keyMsg, o.keys.Down):
		o.cursor = (o.cursor + 1) % fieldCount

	case key.Matches(keyMsg, o.keys.Top):
		o.cursor = 0

	case key.Matches(keyMsg, o.keys.Bottom):
		o.cursor = fieldCount - 1

	case key.Matches(keyMsg, o.keys.Change):
		return o.change()
	}
	return nil
}

// change toggles, cycles or starts editing the field under the cursor.
func (o *SettingsOverlay) change() tea.Cmd {
	switch o.cursor {
	case fieldNotifications:
		return o.apply(func(s *config.Settings) { s.NotificationsEnabled = !s.NotificationsEnabled })
	case fieldTime:
		o.editingTime = true
		o.err = ""
		o.input.SetValue(o.currentTime())
		o.input.CursorEnd()
		o.input.Focus()
		return textinput.Blink
	case fieldAmPm:
		return o.apply(func(s *config.Settings) { s.AmPm = s.AmPm.Toggle() })
	case fieldPanel:
		return o.apply(func(s *config.Settings) { s.Panel = s.Panel.Next() })
	case fieldDarkMode:
		return o.apply(func(s *config.Settings) { s.DarkMode = !s.DarkMode })
	case fieldShowSunday:
		return o.apply(func(s *config.Settings) { s.ShowSunday = !s.ShowSunday })
	case fieldSound:
		return o.apply(func(s *config.Settings) { s.SoundEnabled = !s.SoundEnabled })
	case fieldTone:
		return o.apply(func(s *config.Settings) { s.Tone = s.Tone.Next() })
	}
	return nil
}

func (o *SettingsOverlay) apply(fn func(*config.Settings)) tea.Cmd {
	o.settings = o.settings.With(fn)
	next := o.settings
	return func() tea.Msg { return settingsChangedMsg{settings: next} }
}

// currentTime renders the stored time without a leading zero.
func (o *SettingsOverlay) currentTime() string {
	h, m, ok := config.ParseClock(o.settings.NotificationTime)
	if !ok {
		return o.settings.NotificationTime
	}
	return fmt.Sprintf("%d:%02d", h, m)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// View renders the settings overlay.
func (o *SettingsOverlay) View() string {
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(o.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth(o.width))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(o.styles.ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(o.styles.ColorAccent)

	labelStyle := lipgloss.NewStyle().
		Foreground(o.styles.ColorText).
		Width(24)

	mutedStyle := lipgloss.NewStyle().
		Foreground(o.styles.ColorTextMuted).
		Italic(true)

	s := o.settings
	timeValue := o.currentTime()
	if o.editingTime {
		timeValue = o.input.View()
	}
	firstDay := "Monday"
	if s.ShowSunday {
		firstDay = "Sunday"
	}

	rows := []struct {
		section string
		label   string
		value   string
	}{
		{"Notifications", "Daily reminder", onOff(s.NotificationsEnabled)},
		{"", "Reminder time", timeValue},
		{"", "AM / PM", string(s.AmPm)},
		{"", "Notification panel", string(s.Panel)},
		{"Appearance", "Dark mode", onOff(s.DarkMode)},
		{"", "First day of week", firstDay},
		{"Sound", "Sound", onOff(s.SoundEnabled)},
		{"", "Notification tone", string(s.Tone)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("⚙️  Settings"))
	b.WriteString("\n")

	for i, row := range rows {
		if row.section != "" {
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(row.section))
			b.WriteString("\n")
		}
		prefix := "  "
		if settingsField(i) == o.cursor {
			prefix = "▶ "
		}
		line := prefix + labelStyle.Render(row.label) + row.value
		if settingsField(i) == o.cursor {
			line = o.styles.TaskSelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(o.styles.ErrorStyle.Render(o.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if o.editingTime {
		b.WriteString(mutedStyle.Render("enter save · esc cancel"))
	} else {
		b.WriteString(mutedStyle.Render("j/k move · space change · esc close"))
	}

	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, overlayStyle.Render(b.String()))
}
