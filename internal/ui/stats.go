package ui

import (
	"fmt"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/stats"
	"tasktrack/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// StatsView selects which window the stats pane summarizes.
type StatsView int

const (
	ViewWeekly StatsView = iota
	ViewMonthly
	ViewCustom
)

func (v StatsView) String() string {
	switch v {
	case ViewMonthly:
		return "Month"
	case ViewCustom:
		return "Custom"
	default:
		return "Week"
	}
}

// StatsPane shows completion totals, streaks and a daily breakdown.
// Figures are recomputed from the store on every render.
type StatsPane struct {
	store   *tasks.Store
	styles  *Styles
	focused bool
	width   int
	height  int

	view   StatsView
	custom *stats.Window

	// Custom range entry: step 0 reads the start date, step 1 the end date.
	entering  bool
	step      int
	fromValue string
	input     textinput.Model
	inputErr  string

	bar progress.Model

	keys      StatsKeyMap
	inputKeys InputKeyMap
}

// NewStatsPane creates a stats pane showing the weekly window.
func NewStatsPane(store *tasks.Store, styles *Styles, keyCfg *config.KeysConfig) *StatsPane {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12

	p := &StatsPane{
		store:     store,
		styles:    styles,
		input:     ti,
		keys:      NewStatsKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
	p.bar = p.newBar()
	return p
}

func (p *StatsPane) newBar() progress.Model {
	return progress.New(
		progress.WithSolidFill(string(p.styles.ColorPrimary)),
		progress.WithoutPercentage(),
		progress.WithWidth(max(10, p.width-6)),
	)
}

// SetSize sets the pane dimensions.
func (p *StatsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.bar.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *StatsPane) SetFocused(focused bool) {
	p.focused = focused
}

// SetStyles swaps the palette after a dark mode change.
func (p *StatsPane) SetStyles(styles *Styles) {
	p.styles = styles
	p.bar = p.newBar()
}

// IsEntering returns whether the custom range input is active.
func (p *StatsPane) IsEntering() bool {
	return p.entering
}

// CurrentView returns the window currently selected.
func (p *StatsPane) CurrentView() StatsView {
	return p.view
}

// SetCustom selects a custom window and switches to it.
func (p *StatsPane) SetCustom(w stats.Window) {
	p.custom = &w
	p.view = ViewCustom
}

// Snapshot computes statistics as of the store's today.
func (p *StatsPane) Snapshot() stats.Snapshot {
	return stats.Compute(p.store, p.store.Now(), p.custom)
}

// window returns the window for the selected view.
func (p *StatsPane) window() stats.Window {
	today := p.store.Now()
	switch p.view {
	case ViewMonthly:
		return stats.MonthlyWindow(today)
	case ViewCustom:
		if p.custom != nil {
			return *p.custom
		}
	}
	return stats.WeeklyWindow(today)
}

func (p *StatsPane) startEntering() tea.Cmd {
	p.entering = true
	p.step = 0
	p.fromValue = ""
	p.inputErr = ""
	p.input.Reset()
	p.input.Focus()
	return textinput.Blink
}

func (p *StatsPane) stopEntering() {
	p.entering = false
	p.step = 0
	p.fromValue = ""
	p.input.Reset()
	p.input.Blur()
}

// Update handles messages for the stats pane.
func (p *StatsPane) Update(msg tea.Msg) tea.Cmd {
	if p.entering {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, p.inputKeys.Confirm):
				value := strings.TrimSpace(p.input.Value())
				if p.step == 0 {
					if _, ok := tasks.ParseDateKey(value); !ok {
						p.inputErr = fmt.Sprintf("invalid date %q", value)
						return nil
					}
					p.fromValue = value
					p.step = 1
					p.inputErr = ""
					p.input.Reset()
					return nil
				}
				w, err := stats.ParseWindow(p.fromValue, value)
				if err != nil {
					p.inputErr = err.Error()
					return nil
				}
				p.stopEntering()
				p.inputErr = ""
				p.SetCustom(w)
				return nil

			case key.Matches(keyMsg, p.inputKeys.Cancel):
				p.stopEntering()
				p.inputErr = ""
				return nil
			}
		}

		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	if !p.focused {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.CycleView):
		switch p.view {
		case ViewWeekly:
			p.view = ViewMonthly
		case ViewMonthly:
			if p.custom == nil {
				return p.startEntering()
			}
			p.view = ViewCustom
		default:
			p.view = ViewWeekly
		}

	case key.Matches(keyMsg, p.keys.CustomRange):
		return p.startEntering()
	}
	return nil
}

// View renders the stats pane.
func (p *StatsPane) View() string {
	var b strings.Builder

	b.WriteString(p.styles.PaneTitleStyle.Render("📊 STATS"))
	b.WriteString("\n")

	// View selector
	var tabs []string
	for _, v := range []StatsView{ViewWeekly, ViewMonthly, ViewCustom} {
		if v == p.view {
			tabs = append(tabs, p.styles.HelpKeyStyle.Render("["+v.String()+"]"))
		} else {
			tabs = append(tabs, p.styles.HelpStyle.Render(" "+v.String()+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")

	w := p.window()
	totals := stats.Sum(p.store, w)
	b.WriteString(p.styles.StatLabelStyle.Render(w.String()))
	b.WriteString("\n\n")

	b.WriteString(p.styles.StatValueStyle.Render(fmt.Sprintf("%d/%d completed", totals.Completed, totals.Total)))
	b.WriteString(p.styles.StatLabelStyle.Render(fmt.Sprintf("  %d%%", totals.Percent)))
	b.WriteString("\n")
	b.WriteString(p.bar.ViewAs(float64(totals.Percent) / 100))
	b.WriteString("\n\n")

	snap := p.Snapshot()
	p.writeStat(&b, "Today", fmt.Sprintf("%d/%d", snap.Today.Completed, snap.Today.Total))
	p.writeStat(&b, "Current streak", p.styles.StreakStyle.Render(stats.Days(snap.CurrentStreak)+" 🔥"))
	p.writeStat(&b, "Longest streak", stats.Days(snap.LongestStreak))
	p.writeStat(&b, "Avg completion", stats.FormatDuration(snap.AvgCompletion))
	p.writeStat(&b, "Best hour", stats.FormatHour(snap.MostProductiveHour))

	// Last seven days
	b.WriteString("\n")
	barWidth := max(5, min(15, p.width-20))
	for _, day := range stats.Breakdown(p.store, stats.WeeklyWindow(p.store.Now())) {
		filled := 0
		if day.Total > 0 {
			filled = day.Completed * barWidth / day.Total
		}
		line := fmt.Sprintf("%s %s%s %d/%d",
			day.DayOfWeek,
			strings.Repeat("█", filled),
			strings.Repeat("░", barWidth-filled),
			day.Completed, day.Total)
		b.WriteString(p.styles.StatLabelStyle.Render(line))
		b.WriteString("\n")
	}

	if p.entering {
		b.WriteString("\n")
		prompt := "From: "
		if p.step == 1 {
			prompt = "To:   "
		}
		b.WriteString(p.styles.InputPromptStyle.Render(prompt) + p.input.View())
		b.WriteString("\n")
	}
	if p.inputErr != "" {
		b.WriteString(p.styles.ErrorStyle.Render(p.inputErr))
		b.WriteString("\n")
	}

	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}
	return style.Width(p.width).Height(p.height).Render(b.String())
}

func (p *StatsPane) writeStat(b *strings.Builder, label, value string) {
	b.WriteString(p.styles.StatLabelStyle.Render(fmt.Sprintf("%-15s", label)))
	b.WriteString(p.styles.StatValueStyle.Render(value))
	b.WriteString("\n")
}
