package notify

import (
	"context"
	"time"
)

// Scheduler invokes Tick once immediately and then on every wall-clock
// minute boundary until the context is cancelled.
type Scheduler struct {
	Tick func(now time.Time)

	now func() time.Time
}

// NewScheduler returns a Scheduler that calls tick each minute.
func NewScheduler(tick func(now time.Time)) *Scheduler {
	return &Scheduler{Tick: tick, now: time.Now}
}

// SetNowFunc overrides the scheduler clock. Passing nil resets it to time.Now.
func (s *Scheduler) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Run blocks until ctx is done. It returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	if s.now == nil {
		s.now = time.Now
	}
	s.Tick(s.now())

	timer := time.NewTimer(UntilNextMinute(s.now()))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			now := s.now()
			s.Tick(now)
			timer.Reset(UntilNextMinute(now))
		}
	}
}
