package ui

import (
	"fmt"
	"strings"
	"time"

	"tasktrack/internal/calendar"
	"tasktrack/internal/config"
	"tasktrack/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cellWidth is the rendered width of one day column.
const cellWidth = 4

// CalendarPane shows a month grid with per-day completion markers.
// The cursor is a day in the displayed month; the selected day is the one
// whose tasks the task pane is showing.
type CalendarPane struct {
	store   *tasks.Store
	styles  *Styles
	keys    CalendarKeyMap
	focused bool
	width   int
	height  int

	year             int
	month            time.Month
	cursor           int // day of month
	selected         string
	weekStartsMonday bool
}

// NewCalendarPane creates a calendar pane positioned on the store's today.
func NewCalendarPane(store *tasks.Store, styles *Styles, keyCfg *config.KeysConfig, weekStartsMonday bool) *CalendarPane {
	p := &CalendarPane{
		store:            store,
		styles:           styles,
		keys:             NewCalendarKeyMap(keyCfg),
		focused:          true,
		weekStartsMonday: weekStartsMonday,
	}
	p.JumpToToday()
	return p
}

// SetSize sets the pane dimensions.
func (p *CalendarPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *CalendarPane) SetFocused(focused bool) {
	p.focused = focused
}

// SetStyles swaps the palette after a dark mode change.
func (p *CalendarPane) SetStyles(styles *Styles) {
	p.styles = styles
}

// SetWeekStartsMonday changes the leading weekday column.
func (p *CalendarPane) SetWeekStartsMonday(monday bool) {
	p.weekStartsMonday = monday
}

// JumpToToday moves the displayed month, cursor and selection to today.
func (p *CalendarPane) JumpToToday() {
	now := p.store.Now()
	p.year, p.month, p.cursor = now.Year(), now.Month(), now.Day()
	p.selected = tasks.DateKey(now)
}

// Month returns the displayed year and month.
func (p *CalendarPane) Month() (int, time.Month) {
	return p.year, p.month
}

// CursorKey returns the date key under the cursor.
func (p *CalendarPane) CursorKey() string {
	return tasks.KeyFor(p.year, p.month, p.cursor)
}

// Selected returns the date key whose tasks are being shown.
func (p *CalendarPane) Selected() string {
	return p.selected
}

// Grid projects the displayed month from the store.
func (p *CalendarPane) Grid() calendar.Month {
	return calendar.Build(p.year, p.month, p.store, p.weekStartsMonday)
}

// moveCursor shifts the cursor by delta days, following it into the
// adjacent month when it walks off the edge.
func (p *CalendarPane) moveCursor(delta int) {
	d := time.Date(p.year, p.month, p.cursor+delta, 12, 0, 0, 0, time.Local)
	p.year, p.month, p.cursor = d.Year(), d.Month(), d.Day()
}

// shiftMonth moves the displayed month, clamping the cursor to its length.
func (p *CalendarPane) shiftMonth(delta int) {
	p.year, p.month = calendar.Shift(p.year, p.month, delta)
	p.cursor = min(p.cursor, calendar.DaysIn(p.year, p.month))
}

// Update handles messages for the calendar pane.
func (p *CalendarPane) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Left):
		p.moveCursor(-1)
	case key.Matches(keyMsg, p.keys.Right):
		p.moveCursor(1)
	case key.Matches(keyMsg, p.keys.Up):
		p.moveCursor(-7)
	case key.Matches(keyMsg, p.keys.Down):
		p.moveCursor(7)
	case key.Matches(keyMsg, p.keys.PrevMonth):
		p.shiftMonth(-1)
	case key.Matches(keyMsg, p.keys.NextMonth):
		p.shiftMonth(1)
	case key.Matches(keyMsg, p.keys.Today):
		p.JumpToToday()
		return selectDay(p.selected)
	case key.Matches(keyMsg, p.keys.Select):
		p.selected = p.CursorKey()
		return selectDay(p.selected)
	}
	return nil
}

func selectDay(dateKey string) tea.Cmd {
	return func() tea.Msg { return daySelectedMsg{dateKey: dateKey} }
}

// View renders the calendar pane.
func (p *CalendarPane) View() string {
	var b strings.Builder

	grid := p.Grid()
	b.WriteString(p.styles.PaneTitleStyle.Render("📅 " + strings.ToUpper(grid.Title())))
	b.WriteString("\n")

	// Weekday header
	for _, label := range calendar.WeekdayLabels(p.weekStartsMonday) {
		b.WriteString(p.styles.CalHeaderStyle.Render(fmt.Sprintf("%-*s", cellWidth, label)))
	}
	b.WriteString("\n")

	today := tasks.DateKey(p.store.Now())
	for _, week := range grid.Weeks() {
		for _, cell := range week {
			b.WriteString(p.renderCell(cell, today))
		}
		b.WriteString("\n")
	}

	// Summary for the day under the cursor
	b.WriteString("\n")
	done, total := p.store.Counts(p.CursorKey())
	cursorDate := time.Date(p.year, p.month, p.cursor, 0, 0, 0, 0, time.Local)
	summary := cursorDate.Format("Mon Jan 2")
	switch {
	case total == 0:
		summary += " · no tasks"
	case done == total:
		summary += fmt.Sprintf(" · all %d done", total)
	default:
		summary += fmt.Sprintf(" · %d/%d done", done, total)
	}
	b.WriteString(p.styles.StatLabelStyle.Render(summary))
	b.WriteString("\n")

	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}
	return style.Width(p.width).Height(p.height).Render(b.String())
}

// renderCell renders one grid slot: the day number followed by a ✓ when
// every task is done or a • when some are still open.
func (p *CalendarPane) renderCell(cell calendar.Cell, today string) string {
	if cell.Blank() {
		return strings.Repeat(" ", cellWidth)
	}

	mark := " "
	switch {
	case cell.FullyCompleted:
		mark = p.styles.CalDoneMark
	case cell.TaskCount > 0:
		mark = p.styles.CalOpenMark
	}

	num := fmt.Sprintf("%2d", cell.Day)
	switch {
	case cell.Day == p.cursor && p.focused:
		num = p.styles.CalCursorStyle.Render(num)
	case cell.DateKey == p.selected:
		num = p.styles.CalSelectedStyle.Render(num)
	case cell.DateKey == today:
		num = p.styles.CalTodayStyle.Render(num)
	default:
		num = p.styles.CalDayStyle.Render(num)
	}

	return lipgloss.NewStyle().Width(cellWidth).Render(num + mark)
}
