package seed

import (
	"math/rand"
	"time"

	"tasktrack/internal/tasks"
)

// Templates are the task names used for generated sample days.
var Templates = []string{
	"Morning workout",
	"Read 30 pages",
	"Meditate 10 min",
	"Drink 8 glasses of water",
	"Review daily goals",
	"Evening walk",
}

const (
	defaultSampleDays   = 30
	sampleMinPerDay     = 2
	sampleMaxPerDay     = 5
	sampleDoneChance    = 0.6
	sampleMaxTurnaround = 2 * time.Hour
)

// Sample fills the trailing Days days (today included) with 2-5 of the
// templates each, about 60% of them completed within two hours.
type Sample struct {
	Days int
	Rand *rand.Rand
	Now  func() time.Time
}

// NewSample returns a Sample seeded from the wall clock.
func NewSample(days int) *Sample {
	if days <= 0 {
		days = defaultSampleDays
	}
	return &Sample{
		Days: days,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:  time.Now,
	}
}

// Name returns the strategy name.
func (s *Sample) Name() string { return "sample" }

// Seed generates and inserts the sample days.
func (s *Sample) Seed(store *tasks.Store) (*Result, error) {
	return insert(store, s.Entries()), nil
}

// Entries generates the sample data without inserting it.
func (s *Sample) Entries() []Entry {
	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	days := s.Days
	if days <= 0 {
		days = defaultSampleDays
	}

	today := tasks.StartOfDay(now())
	var entries []Entry
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		key := tasks.DateKey(day)
		n := sampleMinPerDay + rng.Intn(sampleMaxPerDay-sampleMinPerDay+1)

		for idx, name := range Templates[:n] {
			created := day.Add(time.Duration(idx) * time.Second)
			e := Entry{DateKey: key, Name: name, CreatedAt: created}
			if rng.Float64() < sampleDoneChance {
				done := created.Add(time.Duration(rng.Int63n(int64(sampleMaxTurnaround))))
				e.Completed = true
				e.CompletedAt = &done
			}
			entries = append(entries, e)
		}
	}
	return entries
}
