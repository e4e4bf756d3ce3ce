package stats

import (
	"sort"
	"time"

	"tasktrack/internal/tasks"
)

// Qualifies reports whether a day counts toward a streak: it has at least
// one task and every task is completed.
func Qualifies(src Source, day time.Time) bool {
	c, t := src.Counts(tasks.DateKey(day))
	return t > 0 && c == t
}

// CurrentStreak counts consecutive qualifying days walking back from today.
// If today does not qualify yet, counting starts from yesterday, so an
// unfinished today never breaks a streak built on earlier days.
func CurrentStreak(src Source, today time.Time) int {
	day := calendarDay(today)
	if !Qualifies(src, day) {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for Qualifies(src, day) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive qualifying days on or
// before today.
func LongestStreak(src Source, today time.Time) int {
	end := calendarDay(today)

	var days []time.Time
	for _, key := range src.Keys() {
		d, ok := tasks.ParseDateKey(key)
		if !ok || d.After(end) || !Qualifies(src, d) {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && tasks.DateKey(days[i-1].AddDate(0, 0, 1)) == tasks.DateKey(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
