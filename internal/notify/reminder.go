package notify

import (
	"fmt"
	"sync"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/tasks"
)

// Title is used for every reminder notification.
const Title = "tasktrack"

// Counter reports completion counts for a date key.
type Counter interface {
	Counts(dateKey string) (completed, total int)
}

// Due reports whether now falls on the configured reminder minute.
// A reminder time that cannot be parsed never matches.
func Due(now time.Time, s config.Settings) bool {
	if !s.NotificationsEnabled {
		return false
	}
	h, m, ok := s.ReminderClock()
	if !ok {
		return false
	}
	return now.Hour() == h && now.Minute() == m
}

// Message builds the reminder text for n open tasks. It returns "" when
// there is nothing left to do.
func Message(remaining int) string {
	switch {
	case remaining <= 0:
		return ""
	case remaining == 1:
		return "⏰ You have 1 task remaining today!"
	default:
		return fmt.Sprintf("⏰ You have %d tasks remaining today!", remaining)
	}
}

// Reminder evaluates the once-a-day check. It fires at most once per
// wall-clock minute even if checked repeatedly within it.
type Reminder struct {
	mu        sync.Mutex
	lastFired string
}

// Check returns the reminder text when now matches the configured time and
// today's bucket still has open tasks. It only reads from src.
func (r *Reminder) Check(now time.Time, s config.Settings, src Counter) (string, bool) {
	if !Due(now, s) {
		return "", false
	}

	minute := now.Format("2006-01-02T15:04")
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastFired == minute {
		return "", false
	}

	completed, total := src.Counts(tasks.DateKey(now))
	msg := Message(total - completed)
	if msg == "" {
		return "", false
	}
	r.lastFired = minute
	return msg, true
}

// UntilNextMinute returns the delay until the next wall-clock minute boundary.
func UntilNextMinute(now time.Time) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(now)
}
