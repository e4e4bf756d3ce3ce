package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"tasktrack/internal/tasks"
)

const (
	weeklyDays  = 7
	monthlyDays = 30
)

// Percent returns round(100*completed/total), or 0 for an empty total.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// calendarDay returns local midnight of t's calendar date, the same instant
// ParseDateKey yields for DateKey(t). t's own location decides the date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// NewWindow builds an inclusive window over the calendar dates of from and to.
func NewWindow(from, to time.Time) Window {
	return Window{From: calendarDay(from), To: calendarDay(to)}
}

// Trailing returns the window of n days ending on (and including) today.
func Trailing(today time.Time, n int) Window {
	end := calendarDay(today)
	return Window{From: end.AddDate(0, 0, -(n - 1)), To: end}
}

// WeeklyWindow is today and the six days before it.
func WeeklyWindow(today time.Time) Window { return Trailing(today, weeklyDays) }

// MonthlyWindow is today and the twenty-nine days before it.
func MonthlyWindow(today time.Time) Window { return Trailing(today, monthlyDays) }

// ParseWindow parses two YYYY-MM-DD keys into an inclusive window.
func ParseWindow(from, to string) (Window, error) {
	f, ok := tasks.ParseDateKey(from)
	if !ok {
		return Window{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", from)
	}
	t, ok := tasks.ParseDateKey(to)
	if !ok {
		return Window{}, fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", to)
	}
	if f.After(t) {
		return Window{}, fmt.Errorf("start date %s is after end date %s", from, to)
	}
	return Window{From: f, To: t}, nil
}

// Contains reports whether the calendar day of d lies inside the window.
// Membership is decided on date keys so the zone of d never matters.
func (w Window) Contains(d time.Time) bool {
	key := tasks.DateKey(d)
	return key >= tasks.DateKey(w.From) && key <= tasks.DateKey(w.To)
}

// Days returns the number of calendar days the window spans.
func (w Window) Days() int {
	n := 0
	for d := w.From; !d.After(w.To); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// String renders "2024-05-04 → 2024-05-10".
func (w Window) String() string {
	return tasks.DateKey(w.From) + " → " + tasks.DateKey(w.To)
}

// Sum totals every bucket whose key falls inside the window.
// Keys that do not parse as dates are skipped.
func Sum(src Source, w Window) Totals {
	var out Totals
	for _, key := range src.Keys() {
		d, ok := tasks.ParseDateKey(key)
		if !ok || !w.Contains(d) {
			continue
		}
		c, t := src.Counts(key)
		out.Completed += c
		out.Total += t
	}
	out.Percent = Percent(out.Completed, out.Total)
	return out
}

// ForDay totals a single date.
func ForDay(src Source, day time.Time) Totals {
	c, t := src.Counts(tasks.DateKey(day))
	return Totals{Completed: c, Total: t, Percent: Percent(c, t)}
}

// Breakdown returns one row per day in the window, oldest first.
func Breakdown(src Source, w Window) []Day {
	var days []Day
	for d := w.From; !d.After(w.To); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			DateKey:   tasks.DateKey(d),
			DayOfWeek: d.Format("Mon"),
			Totals:    ForDay(src, d),
		})
	}
	return days
}

// AverageCompletion is the mean time between creating and completing a task,
// over every completed task in the store.
func AverageCompletion(src Source) time.Duration {
	var sum time.Duration
	n := 0
	for _, key := range src.Keys() {
		for _, t := range src.Bucket(key) {
			if !t.Completed || t.CompletedAt == nil {
				continue
			}
			d := t.CompletedAt.Sub(t.CreatedAt)
			if d < 0 {
				d = 0
			}
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / time.Duration(n)
}

// MostProductiveHour returns the hour of day (0-23) with the most completions.
// Ties go to the earlier hour; -1 means nothing has been completed.
func MostProductiveHour(src Source) int {
	var hours [24]int
	found := false
	for _, key := range src.Keys() {
		for _, t := range src.Bucket(key) {
			if t.Completed && t.CompletedAt != nil {
				hours[t.CompletedAt.Hour()]++
				found = true
			}
		}
	}
	if !found {
		return -1
	}
	best := 0
	for h := 1; h < len(hours); h++ {
		if hours[h] > hours[best] {
			best = h
		}
	}
	return best
}

// Compute builds a snapshot as of today. custom may be nil.
func Compute(src Source, today time.Time, custom *Window) Snapshot {
	snap := Snapshot{
		AsOf:               calendarDay(today),
		Today:              ForDay(src, today),
		Weekly:             Sum(src, WeeklyWindow(today)),
		Monthly:            Sum(src, MonthlyWindow(today)),
		CurrentStreak:      CurrentStreak(src, today),
		LongestStreak:      LongestStreak(src, today),
		AvgCompletion:      AverageCompletion(src),
		MostProductiveHour: MostProductiveHour(src),
	}
	if custom != nil {
		w := *custom
		totals := Sum(src, w)
		snap.Custom = &totals
		snap.CustomWindow = &w
	}
	return snap
}

// BuildReport assembles the snapshot, breakdown and task list for a window.
func BuildReport(src Source, today time.Time, w Window) *Report {
	var list []tasks.Task
	keys := src.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		d, ok := tasks.ParseDateKey(key)
		if !ok || !w.Contains(d) {
			continue
		}
		list = append(list, src.Bucket(key)...)
	}
	return &Report{
		Snapshot:    Compute(src, today, &w),
		Window:      w,
		Days:        Breakdown(src, w),
		Tasks:       list,
		GeneratedAt: time.Now(),
	}
}
