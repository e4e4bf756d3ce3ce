// Package calendar projects the task store onto a month grid.
package calendar

import (
	"time"

	"tasktrack/internal/tasks"
)

// Counter reports completion counts for a date key.
// *tasks.Store satisfies it.
type Counter interface {
	Counts(dateKey string) (completed, total int)
}

// Cell is one slot in a month grid. Leading blanks have Day == 0 and an
// empty DateKey.
type Cell struct {
	Day            int
	DateKey        string
	TaskCount      int
	CompletedCount int
	FullyCompleted bool
}

// Blank reports whether the cell is padding before the first of the month.
func (c Cell) Blank() bool { return c.Day == 0 }

// Month is the projected grid for one calendar month.
type Month struct {
	Year             int
	Month            time.Month
	WeekStartsMonday bool
	Cells            []Cell
}

// Build lays out every day of the month after the leading blanks needed to
// align day 1 under its weekday column. Days with no bucket in src report
// zero tasks and are never fully completed.
func Build(year int, month time.Month, src Counter, weekStartsMonday bool) Month {
	lead := LeadingBlanks(year, month, weekStartsMonday)
	days := DaysIn(year, month)

	cells := make([]Cell, lead, lead+days)
	for d := 1; d <= days; d++ {
		key := tasks.KeyFor(year, month, d)
		cell := Cell{Day: d, DateKey: key}
		if src != nil {
			cell.CompletedCount, cell.TaskCount = src.Counts(key)
		}
		cell.FullyCompleted = cell.TaskCount > 0 && cell.CompletedCount == cell.TaskCount
		cells = append(cells, cell)
	}

	return Month{Year: year, Month: month, WeekStartsMonday: weekStartsMonday, Cells: cells}
}

// DaysIn returns the number of days in the month, accounting for leap years.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first of the month.
func StartDay(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// LeadingBlanks returns how many empty cells precede day 1, in [0, 6].
func LeadingBlanks(year int, month time.Month, weekStartsMonday bool) int {
	raw := int(StartDay(year, month))
	if !weekStartsMonday {
		return raw
	}
	if raw == 0 {
		return 6
	}
	return raw - 1
}

// Shift moves a year/month pair by delta months, wrapping across years.
func Shift(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// WeekdayLabels returns two-letter column headers in display order.
func WeekdayLabels(weekStartsMonday bool) []string {
	labels := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	if weekStartsMonday {
		return append(labels[1:7:7], labels[0])
	}
	return labels
}

// Weeks splits the grid into rows of seven, padding the final row with blanks.
func (m Month) Weeks() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(m.Cells); i += 7 {
		end := i + 7
		row := make([]Cell, 7)
		if end > len(m.Cells) {
			end = len(m.Cells)
		}
		copy(row, m.Cells[i:end])
		rows = append(rows, row)
	}
	return rows
}

// Title renders "May 2024".
func (m Month) Title() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// IndexOf returns the cell index holding day, or -1.
func (m Month) IndexOf(day int) int {
	for i, c := range m.Cells {
		if c.Day == day {
			return i
		}
	}
	return -1
}
