// Package seed populates the task store at startup. Each strategy is a
// Seeder: random sample data, an empty store, a validated JSON fixture, or
// tasks pulled from Taskwarrior and Todoist exports.
package seed

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasktrack/internal/config"
	"tasktrack/internal/tasks"
)

// Result contains statistics about a seeding run.
type Result struct {
	Seeded  int      // Number of tasks placed in the store
	Skipped int      // Number of skipped items (notes, deleted tasks, undated rows)
	Errors  []string // Per-item problems that did not abort the run
}

// Entry is a task staged for insertion, before it receives an ID.
type Entry struct {
	DateKey     string
	Name        string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Seeder fills an empty store.
type Seeder interface {
	// Seed adds tasks to store.
	Seed(store *tasks.Store) (*Result, error)

	// Name returns the strategy name (e.g., "sample", "fixture").
	Name() string
}

// Parser is implemented by file-backed seeders so callers can inspect
// what would be loaded without touching a store.
type Parser interface {
	Parse(r io.Reader) ([]Entry, error)
}

// Strategies returns the list of supported strategy names.
func Strategies() []string {
	return []string{"sample", "none", "fixture", "taskwarrior", "todoist"}
}

// ByName returns the seeder for strategy. File-backed strategies need path.
func ByName(strategy, path string, days int) (Seeder, error) {
	strategy = strings.ToLower(strings.TrimSpace(strategy))
	path = config.ExpandPath(path)

	switch strategy {
	case "", "sample":
		return NewSample(days), nil
	case "none", "empty":
		return None{}, nil
	}

	if path == "" {
		return nil, fmt.Errorf("seed strategy %q requires a file path", strategy)
	}
	switch strategy {
	case "fixture":
		return &Fixture{Path: path}, nil
	case "taskwarrior":
		return &Taskwarrior{Path: path}, nil
	case "todoist":
		return &Todoist{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown seed strategy %q (want one of %s)", strategy, strings.Join(Strategies(), ", "))
	}
}

// None leaves the store empty.
type None struct{}

// Name returns the strategy name.
func (None) Name() string { return "none" }

// Seed does nothing.
func (None) Seed(*tasks.Store) (*Result, error) { return &Result{}, nil }

// insert assigns IDs and restores each entry into store.
func insert(store *tasks.Store, entries []Entry) *Result {
	result := &Result{}
	for _, e := range entries {
		ok := store.Restore(tasks.Task{
			ID:          uuid.NewString(),
			Name:        e.Name,
			Completed:   e.Completed,
			DateKey:     e.DateKey,
			CreatedAt:   e.CreatedAt,
			CompletedAt: e.CompletedAt,
		}, -1)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: rejected task %q", e.DateKey, e.Name))
			continue
		}
		result.Seeded++
	}
	return result
}

// seedFromFile opens path, parses it with p and inserts the entries.
func seedFromFile(path string, p Parser, store *tasks.Store) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	entries, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return insert(store, entries), nil
}

// dayOf picks the bucket for an imported task: its due date when present,
// otherwise the day it was created.
func dayOf(due, created *time.Time) (string, bool) {
	switch {
	case due != nil:
		return tasks.DateKey(*due), true
	case created != nil:
		return tasks.DateKey(*created), true
	}
	return "", false
}
