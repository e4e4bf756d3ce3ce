package ui

import (
	"strings"

	"tasktrack/internal/config"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpSection is one titled block of bindings in the help overlay.
type helpSection struct {
	title    string
	bindings []key.Binding
}

// HelpOverlay lists every binding, grouped by where it applies. Labels come
// from the live key maps so remapped keys show up as configured.
type HelpOverlay struct {
	width    int
	height   int
	styles   *Styles
	sections []helpSection
}

// NewHelpOverlay builds the overlay for the given key configuration.
func NewHelpOverlay(styles *Styles, keys *config.KeysConfig) *HelpOverlay {
	global := NewGlobalKeyMap(keys)
	cal := NewCalendarKeyMap(keys)
	task := NewTaskKeyMap(keys)
	st := NewStatsKeyMap(keys)
	input := NewInputKeyMap(keys)

	return &HelpOverlay{
		styles: styles,
		sections: []helpSection{
			{"Global", []key.Binding{
				global.NextPane, global.Pane1, global.Pane2, global.Pane3,
				global.Settings, global.Undo, global.Redo, global.Help, global.Quit,
			}},
			{"Calendar", flatten(cal.FullHelp())},
			{"Tasks", flatten(task.FullHelp())},
			{"Stats", flatten(st.FullHelp())},
			{"Input Mode", []key.Binding{input.Confirm, input.Cancel}},
		},
	}
}

func flatten(groups [][]key.Binding) []key.Binding {
	var out []key.Binding
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// keyLabel renders the keys a binding actually matches, e.g. "k/up".
func keyLabel(b key.Binding) string {
	keys := b.Keys()
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// SetStyles swaps the palette after a dark mode change.
func (h *HelpOverlay) SetStyles(styles *Styles) {
	h.styles = styles
}

// SetSize sets the overlay dimensions
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help overlay centered on screen.
func (h *HelpOverlay) View() string {
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth(h.width))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.styles.ColorPrimary)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.styles.ColorAccent)

	keyStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorWarning).
		Width(16)

	descStyle := lipgloss.NewStyle().Foreground(h.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("📖 tasktrack - Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, s := range h.sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, binding := range s.bindings {
			b.WriteString(keyStyle.Render(keyLabel(binding)))
			b.WriteString(descStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press ? or Esc to close"))

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, overlayStyle.Render(b.String()))
}
