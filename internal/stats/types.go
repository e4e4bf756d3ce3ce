// Package stats aggregates completion statistics over the task store.
// Everything here is derived on demand; nothing is cached.
package stats

import (
	"time"

	"tasktrack/internal/tasks"
)

// Source is the read side of the task store that statistics are computed from.
// *tasks.Store satisfies it.
type Source interface {
	Keys() []string
	Counts(dateKey string) (completed, total int)
	Bucket(dateKey string) []tasks.Task
}

// Totals holds completion counts for a period.
type Totals struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// Remaining returns the number of open tasks.
func (t Totals) Remaining() int { return t.Total - t.Completed }

// Window is an inclusive range of calendar days.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Snapshot is a full statistics readout as of a given day.
type Snapshot struct {
	AsOf               time.Time     `json:"as_of"`
	Today              Totals        `json:"today"`
	Weekly             Totals        `json:"weekly"`
	Monthly            Totals        `json:"monthly"`
	Custom             *Totals       `json:"custom,omitempty"`
	CustomWindow       *Window       `json:"custom_window,omitempty"`
	CurrentStreak      int           `json:"current_streak"`
	LongestStreak      int           `json:"longest_streak"`
	AvgCompletion      time.Duration `json:"avg_completion"`
	MostProductiveHour int           `json:"most_productive_hour"` // -1 when nothing has been completed
}

// Day is one row of a daily breakdown.
type Day struct {
	DateKey   string `json:"date"`
	DayOfWeek string `json:"day_of_week"`
	Totals
}

// Report bundles a snapshot with the per-day breakdown of a window and the
// tasks that fell inside it. It is what the export command renders.
type Report struct {
	Snapshot    Snapshot     `json:"snapshot"`
	Window      Window       `json:"window"`
	Days        []Day        `json:"days"`
	Tasks       []tasks.Task `json:"tasks"`
	GeneratedAt time.Time    `json:"generated_at"`
}
