package ui

import (
	"tasktrack/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// palette is the base set of colors for one appearance mode.
type palette struct {
	primary, accent, muted    string
	bg, card, text, textMuted string
	success, danger, warning  string
}

var (
	lightPalette = palette{
		primary:   "#ff9800",
		accent:    "#fb8c00",
		muted:     "#bcaaa4",
		bg:        "#fff6e5",
		card:      "#ffe0b2",
		text:      "#1E1E1E",
		textMuted: "#6d4c41",
		success:   "#43a047",
		danger:    "#e53935",
		warning:   "#f57c00",
	}
	darkPalette = palette{
		primary:   "#ffa726",
		accent:    "#ffb74d",
		muted:     "#5d4037",
		bg:        "#0d0d0d",
		card:      "#1a1a1a",
		text:      "#ffa726",
		textMuted: "#a1887f",
		success:   "#81c784",
		danger:    "#ef5350",
		warning:   "#ffcc80",
	}
)

// Styles holds all application styles, initialized with theme configuration.
type Styles struct {
	Dark bool

	// Colors
	ColorPrimary   lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorBg        lipgloss.Color
	ColorBgLight   lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color

	// Component styles
	TitleStyle       lipgloss.Style
	DateStyle        lipgloss.Style
	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style
	PaneTitleStyle   lipgloss.Style

	TaskDoneStyle       lipgloss.Style
	TaskPendingStyle    lipgloss.Style
	TaskSelectedStyle   lipgloss.Style
	TaskCheckboxDone    string
	TaskCheckboxPending string

	// Calendar cell styles
	CalHeaderStyle   lipgloss.Style
	CalDayStyle      lipgloss.Style
	CalTodayStyle    lipgloss.Style
	CalCursorStyle   lipgloss.Style
	CalSelectedStyle lipgloss.Style
	CalDoneMark      string
	CalOpenMark      string

	StreakStyle lipgloss.Style

	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	BannerStyle lipgloss.Style

	InputPromptStyle lipgloss.Style
	InputTextStyle   lipgloss.Style

	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from the given config.
// The palette follows Settings.DarkMode; theme colors override it.
func NewStyles(cfg *config.Config) *Styles {
	return NewStylesFromTheme(&cfg.Theme, cfg.Settings.DarkMode)
}

// NewStylesFromTheme creates a new Styles instance from a ThemeConfig.
// If a theme color is empty, the light or dark palette default is used.
func NewStylesFromTheme(theme *config.ThemeConfig, dark bool) *Styles {
	if theme == nil {
		theme = &config.ThemeConfig{}
	}
	p := lightPalette
	if dark {
		p = darkPalette
	}

	s := &Styles{Dark: dark}

	s.ColorPrimary = colorOrDefault(theme.Primary, p.primary)
	s.ColorAccent = colorOrDefault(theme.Accent, p.accent)
	s.ColorMuted = colorOrDefault(theme.Muted, p.muted)

	// Fixed semantic colors (not configurable from theme)
	s.ColorDanger = lipgloss.Color(p.danger)
	s.ColorWarning = lipgloss.Color(p.warning)
	s.ColorSuccess = lipgloss.Color(p.success)

	s.ColorBg = colorOrDefault(theme.Background, p.bg)
	s.ColorBgLight = lipgloss.Color(p.card)
	s.ColorText = colorOrDefault(theme.Text, p.text)
	s.ColorTextMuted = lipgloss.Color(p.textMuted)

	s.initComponentStyles()

	return s
}

// colorOrDefault returns the lipgloss.Color from hex string, or default if empty.
func colorOrDefault(hex, defaultHex string) lipgloss.Color {
	if hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultHex)
}

// initComponentStyles initializes all component styles based on the color palette.
func (s *Styles) initComponentStyles() {
	// Title bar
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorBg).
		Background(s.ColorPrimary).
		Padding(0, 1)

	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	// Pane styles
	s.PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorMuted).
		Padding(0, 1)

	s.PaneFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Padding(0, 1)

	s.PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary).
		MarginBottom(1)

	// Task styles
	s.TaskDoneStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Strikethrough(true)

	s.TaskPendingStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	s.TaskSelectedStyle = lipgloss.NewStyle().
		Background(s.ColorBgLight).
		Foreground(s.ColorText).
		Bold(true)

	s.TaskCheckboxDone = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("[✓]")
	s.TaskCheckboxPending = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("[ ]")

	// Calendar
	s.CalHeaderStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Bold(true)

	s.CalDayStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	s.CalTodayStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true).
		Underline(true)

	s.CalCursorStyle = lipgloss.NewStyle().
		Background(s.ColorPrimary).
		Foreground(s.ColorBg).
		Bold(true)

	s.CalSelectedStyle = lipgloss.NewStyle().
		Background(s.ColorBgLight).
		Foreground(s.ColorText)

	s.CalDoneMark = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("✓")
	s.CalOpenMark = lipgloss.NewStyle().Foreground(s.ColorWarning).Render("•")

	s.StreakStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning).
		Bold(true)

	// Help bar
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	// Status messages
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	s.BannerStyle = lipgloss.NewStyle().
		Foreground(s.ColorBg).
		Background(s.ColorPrimary).
		Padding(0, 1)

	// Input
	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	// Summary stats
	s.StatLabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.StatValueStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Bold(true)
}

// RenderHelp renders help text with key bindings using the given styles.
func (s *Styles) RenderHelp(keys ...string) string {
	var result string
	for i := 0; i+1 < len(keys); i += 2 {
		if i > 0 {
			result += "  "
		}
		result += s.HelpKeyStyle.Render("["+keys[i]+"]") + " " + s.HelpStyle.Render(keys[i+1])
	}
	return result
}

// overlayWidth returns the width of a centered dialog for a terminal of the
// given width.
func overlayWidth(termWidth int) int {
	if termWidth <= 0 {
		return 60
	}
	return min(60, max(20, termWidth-4))
}
