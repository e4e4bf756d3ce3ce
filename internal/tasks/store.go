package tasks

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds every task for the session, grouped by date key.
// Buckets keep insertion order. All methods are safe for concurrent use;
// reads hand back copies so callers never alias the internal slices.
type Store struct {
	mu       sync.RWMutex
	buckets  map[string][]Task
	now      func() time.Time // injectable clock for deterministic tests
	newID    func() string
	onChange func(Change)
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		buckets: make(map[string][]Task),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// SetNowFunc overrides the clock used to stamp CreatedAt/CompletedAt.
// Passing nil resets it to time.Now.
func (s *Store) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the store clock.
func (s *Store) Now() time.Time {
	s.mu.RLock()
	now := s.now
	s.mu.RUnlock()
	if now == nil {
		return time.Now()
	}
	return now()
}

// SetIDFunc overrides task ID generation. Passing nil restores UUIDs.
func (s *Store) SetIDFunc(fn func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn == nil {
		s.newID = uuid.NewString
		return
	}
	s.newID = fn
}

// SetOnChange registers a callback invoked after every applied mutation.
// It is called outside the store lock.
func (s *Store) SetOnChange(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Store) notify(c Change) {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn(c)
	}
}

// =============================================================================
// Mutations
// =============================================================================

// Add appends a new open task to the bucket for dateKey.
// Blank names and malformed keys are ignored and reported with ok=false.
func (s *Store) Add(dateKey, name string) (Task, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, false
	}
	if _, ok := ParseDateKey(dateKey); !ok {
		return Task{}, false
	}

	s.mu.Lock()
	task := Task{
		ID:        s.newID(),
		Name:      name,
		DateKey:   dateKey,
		CreatedAt: s.now(),
	}
	s.buckets[dateKey] = append(s.buckets[dateKey], task)
	s.mu.Unlock()

	s.notify(Change{Operation: OpAdd, DateKey: dateKey, Task: task})
	return task, true
}

// Toggle flips the completion flag of the task with the given id.
// Completing stamps CompletedAt; reopening clears it. Unknown ids are a no-op.
func (s *Store) Toggle(dateKey, id string) (Task, bool) {
	s.mu.Lock()
	bucket := s.buckets[dateKey]
	idx := indexOf(bucket, id)
	if idx < 0 {
		s.mu.Unlock()
		return Task{}, false
	}
	t := &bucket[idx]
	t.Completed = !t.Completed
	if t.Completed {
		now := s.now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	task := cloneTask(*t)
	s.mu.Unlock()

	s.notify(Change{Operation: OpToggle, DateKey: dateKey, Task: task})
	return task, true
}

// Delete removes the task with the given id. Deleting an unknown id is a no-op,
// so repeated deletes are harmless.
func (s *Store) Delete(dateKey, id string) (Task, bool) {
	s.mu.Lock()
	bucket := s.buckets[dateKey]
	idx := indexOf(bucket, id)
	if idx < 0 {
		s.mu.Unlock()
		return Task{}, false
	}
	task := bucket[idx]
	bucket = append(bucket[:idx:idx], bucket[idx+1:]...)
	if len(bucket) == 0 {
		delete(s.buckets, dateKey)
	} else {
		s.buckets[dateKey] = bucket
	}
	s.mu.Unlock()

	s.notify(Change{Operation: OpDelete, DateKey: dateKey, Task: task})
	return task, true
}

// Restore re-inserts a previously captured task (undo/redo, seeding).
// The task keeps its ID and timestamps and lands at index within its
// bucket; an out-of-range index appends. Tasks without an ID or name,
// with a malformed DateKey, or whose ID already exists are rejected.
func (s *Store) Restore(task Task, index int) bool {
	task.Name = strings.TrimSpace(task.Name)
	if strings.TrimSpace(task.ID) == "" || task.Name == "" {
		return false
	}
	if _, ok := ParseDateKey(task.DateKey); !ok {
		return false
	}

	s.mu.Lock()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.now()
	}
	if task.Completed && task.CompletedAt == nil {
		now := s.now()
		task.CompletedAt = &now
	}
	if !task.Completed {
		task.CompletedAt = nil
	}

	bucket := s.buckets[task.DateKey]
	if indexOf(bucket, task.ID) >= 0 {
		s.mu.Unlock()
		return false
	}
	if index < 0 || index > len(bucket) {
		index = len(bucket)
	}
	bucket = append(bucket, Task{})
	copy(bucket[index+1:], bucket[index:])
	bucket[index] = task
	s.buckets[task.DateKey] = bucket
	s.mu.Unlock()

	s.notify(Change{Operation: OpRestore, DateKey: task.DateKey, Task: cloneTask(task)})
	return true
}

// =============================================================================
// Reads
// =============================================================================

// Bucket returns a copy of the tasks filed under dateKey, in insertion order.
func (s *Store) Bucket(dateKey string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.buckets[dateKey]
	out := make([]Task, len(bucket))
	for i, t := range bucket {
		out[i] = cloneTask(t)
	}
	return out
}

// Get returns the task with id under dateKey and its position in the bucket.
func (s *Store) Get(dateKey, id string) (Task, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.buckets[dateKey]
	idx := indexOf(bucket, id)
	if idx < 0 {
		return Task{}, -1, false
	}
	return cloneTask(bucket[idx]), idx, true
}

// Counts reports how many tasks exist for dateKey and how many are completed.
// A missing bucket yields zeros.
func (s *Store) Counts(dateKey string) (completed, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.buckets[dateKey] {
		total++
		if t.Completed {
			completed++
		}
	}
	return completed, total
}

// Keys returns every date key that currently has at least one task, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.buckets))
	for k, b := range s.buckets {
		if len(b) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of tasks across all buckets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Snapshot returns a deep copy of every bucket.
func (s *Store) Snapshot() map[string][]Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]Task, len(s.buckets))
	for k, b := range s.buckets {
		cp := make([]Task, len(b))
		for i, t := range b {
			cp[i] = cloneTask(t)
		}
		out[k] = cp
	}
	return out
}

func indexOf(bucket []Task, id string) int {
	for i := range bucket {
		if bucket[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTask(t Task) Task {
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		t.CompletedAt = &at
	}
	return t
}
