package tasks

import "time"

// DateKeyLayout is the canonical YYYY-MM-DD form used to join the store,
// the calendar grid and the statistics windows.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a zero-padded YYYY-MM-DD key in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// KeyFor builds the key for a calendar date. Month is 1-based.
func KeyFor(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as local midnight.
func ParseDateKey(key string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
