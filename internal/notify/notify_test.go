// Package notify provides desktop notification support.
// This file contains tests for the notification functionality.
package notify

import (
	"context"
	"os"
	"runtime"
	"sync"
	"testing"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/tasks"
)

// TestNew tests that New() returns a valid notifier.
func TestNew(t *testing.T) {
	n := New()
	if n == nil {
		t.Error("New() returned nil")
	}
}

// TestIsSupported tests platform detection.
func TestIsSupported(t *testing.T) {
	n := New()

	switch runtime.GOOS {
	case "darwin":
		if !n.IsSupported() {
			t.Log("Warning: osascript not available on macOS")
		}
	case "linux":
		t.Logf("Linux notification support: %v", n.IsSupported())
	default:
		if n.IsSupported() {
			t.Errorf("IsSupported() should be false on %s", runtime.GOOS)
		}
	}
}

// TestSend tests sending a notification.
// This is a manual test - it will actually show a notification.
func TestSend(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping notification test in short mode")
	}
	if os.Getenv("RUN_NOTIFY_TESTS") != "1" {
		t.Skip("Skipping manual notification test (set RUN_NOTIFY_TESTS=1 to enable)")
	}

	n := New()
	if !n.IsSupported() {
		t.Skip("Notifications not supported on this platform")
	}

	if err := n.SendWithSound(Title, "This is a test notification", config.ToneChime); err != nil {
		t.Errorf("SendWithSound() error: %v", err)
	}
}

// recordingNotifier captures deliveries.
type recordingNotifier struct {
	plain, sound int
	tone         config.Tone
}

func (r *recordingNotifier) Send(title, message string) error { r.plain++; return nil }
func (r *recordingNotifier) SendWithSound(title, message string, tone config.Tone) error {
	r.sound++
	r.tone = tone
	return nil
}
func (r *recordingNotifier) IsSupported() bool { return true }

func TestDeliver_RespectsSound(t *testing.T) {
	rec := &recordingNotifier{}
	s := config.DefaultSettings().With(func(s *config.Settings) { s.Tone = config.ToneBell })

	_ = Deliver(rec, Title, "hi", s)
	_ = Deliver(rec, Title, "hi", s.With(func(s *config.Settings) { s.SoundEnabled = false }))

	if rec.sound != 1 || rec.plain != 1 || rec.tone != config.ToneBell {
		t.Fatalf("deliveries = %+v", rec)
	}
}

// =============================================================================
// Reminder
// =============================================================================

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 10, hour, minute, 0, 0, time.Local)
}

func TestDue(t *testing.T) {
	pm := config.DefaultSettings().With(func(s *config.Settings) {
		s.NotificationTime = "2:30"
		s.AmPm = config.PM
	})
	tests := []struct {
		name string
		now  time.Time
		s    config.Settings
		want bool
	}{
		{"default 9 AM match", at(9, 0), config.DefaultSettings(), true},
		{"default wrong minute", at(9, 1), config.DefaultSettings(), false},
		{"pm match", at(14, 30), pm, true},
		{"pm morning does not match", at(2, 30), pm, false},
		{"disabled", at(9, 0), config.DefaultSettings().With(func(s *config.Settings) { s.NotificationsEnabled = false }), false},
		{"unparsable time", at(9, 0), config.DefaultSettings().With(func(s *config.Settings) { s.NotificationTime = "soon" }), false},
		{"12 AM is midnight", at(0, 15), config.DefaultSettings().With(func(s *config.Settings) { s.NotificationTime = "12:15" }), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Due(tt.now, tt.s); got != tt.want {
				t.Errorf("Due() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if Message(0) != "" {
		t.Error("Message(0) should be empty")
	}
	if got := Message(1); got != "⏰ You have 1 task remaining today!" {
		t.Errorf("Message(1) = %q", got)
	}
	if got := Message(3); got != "⏰ You have 3 tasks remaining today!" {
		t.Errorf("Message(3) = %q", got)
	}
}

func TestReminderCheck(t *testing.T) {
	store := tasks.New()
	a, _ := store.Add("2024-05-10", "a")
	store.Add("2024-05-10", "b")

	var r Reminder
	s := config.DefaultSettings()

	msg, ok := r.Check(at(9, 0), s, store)
	if !ok || msg != "⏰ You have 2 tasks remaining today!" {
		t.Fatalf("Check() = %q, %v", msg, ok)
	}
	if _, ok := r.Check(at(9, 0).Add(20*time.Second), s, store); ok {
		t.Fatal("Check() fired twice in the same minute")
	}
	if _, ok := r.Check(at(9, 1), s, store); ok {
		t.Fatal("Check() fired off-schedule")
	}

	// Next day with everything complete: nothing to say.
	var r2 Reminder
	store.Toggle("2024-05-10", a.ID)
	b := store.Bucket("2024-05-10")[1]
	store.Toggle("2024-05-10", b.ID)
	if _, ok := r2.Check(at(9, 0), s, store); ok {
		t.Fatal("Check() fired with zero remaining tasks")
	}
	if got := store.Len(); got != 2 {
		t.Fatalf("Check() modified the store: Len() = %d", got)
	}
}

func TestUntilNextMinute(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 45, 0, time.UTC)
	if got := UntilNextMinute(now); got != 15*time.Second {
		t.Errorf("UntilNextMinute() = %v, want 15s", got)
	}
	if got := UntilNextMinute(now.Truncate(time.Minute)); got != time.Minute {
		t.Errorf("UntilNextMinute(on boundary) = %v, want 1m", got)
	}
}

func TestScheduler_TicksImmediatelyAndStops(t *testing.T) {
	var mu sync.Mutex
	ticks := 0
	s := NewScheduler(func(time.Time) {
		mu.Lock()
		ticks++
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := ticks
		mu.Unlock()
		if n >= 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("scheduler never ticked")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
