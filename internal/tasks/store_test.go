package tasks

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// createTestStore returns a Store with a fixed clock and sequential IDs.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	now := time.Date(2024, 5, 10, 9, 30, 0, 0, time.Local)
	s.SetNowFunc(func() time.Time { return now })
	n := 0
	s.SetIDFunc(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	})
	return s
}

// =============================================================================
// Add
// =============================================================================

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		input    string
		wantOK   bool
		wantName string
	}{
		{name: "simple", key: "2024-05-10", input: "Buy groceries", wantOK: true, wantName: "Buy groceries"},
		{name: "trims whitespace", key: "2024-05-10", input: "  Read  ", wantOK: true, wantName: "Read"},
		{name: "blank name", key: "2024-05-10", input: "  ", wantOK: false},
		{name: "empty name", key: "2024-05-10", input: "", wantOK: false},
		{name: "malformed key", key: "2024-5-10", input: "Walk", wantOK: false},
		{name: "long name", key: "2024-05-10", input: strings.Repeat("a", 1000), wantOK: true, wantName: strings.Repeat("a", 1000)},
		{name: "long CJK name", key: "2024-05-10", input: strings.Repeat("日", 67), wantOK: true, wantName: strings.Repeat("日", 67)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStore(t)

			task, ok := s.Add(tt.key, tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Add() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if got := s.Len(); got != 0 {
					t.Fatalf("Len() = %d after rejected add, want 0", got)
				}
				return
			}
			if task.Name != tt.wantName {
				t.Errorf("task.Name = %q, want %q", task.Name, tt.wantName)
			}
			if task.Completed || task.CompletedAt != nil {
				t.Error("new task should be open with nil CompletedAt")
			}
			if task.DateKey != tt.key {
				t.Errorf("task.DateKey = %q, want %q", task.DateKey, tt.key)
			}
			if task.CreatedAt.IsZero() {
				t.Error("task.CreatedAt is zero")
			}
		})
	}
}

func TestAdd_BlankLeavesBucketUnchanged(t *testing.T) {
	s := createTestStore(t)
	s.Add("2024-05-10", "First")

	before := len(s.Bucket("2024-05-10"))
	s.Add("2024-05-10", "  ")
	if after := len(s.Bucket("2024-05-10")); after != before {
		t.Fatalf("bucket length = %d, want %d", after, before)
	}
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := createTestStore(t)
	for _, name := range []string{"a", "b", "c"} {
		s.Add("2024-05-10", name)
	}

	bucket := s.Bucket("2024-05-10")
	for i, want := range []string{"a", "b", "c"} {
		if bucket[i].Name != want {
			t.Errorf("bucket[%d].Name = %q, want %q", i, bucket[i].Name, want)
		}
	}
}

// =============================================================================
// Toggle
// =============================================================================

func TestToggle_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	task, _ := s.Add("2024-05-10", "Meditate")

	done, ok := s.Toggle("2024-05-10", task.ID)
	if !ok {
		t.Fatal("Toggle() ok = false")
	}
	if !done.Completed || done.CompletedAt == nil {
		t.Fatalf("after first toggle: Completed=%v CompletedAt=%v", done.Completed, done.CompletedAt)
	}

	open, _ := s.Toggle("2024-05-10", task.ID)
	if open.Completed || open.CompletedAt != nil {
		t.Fatalf("after second toggle: Completed=%v CompletedAt=%v", open.Completed, open.CompletedAt)
	}
}

func TestToggle_UnknownID(t *testing.T) {
	s := createTestStore(t)
	s.Add("2024-05-10", "Meditate")

	if _, ok := s.Toggle("2024-05-10", "missing"); ok {
		t.Fatal("Toggle() on unknown id should report ok=false")
	}
	if _, ok := s.Toggle("2024-05-11", "t1"); ok {
		t.Fatal("Toggle() on wrong bucket should report ok=false")
	}
	if c, total := s.Counts("2024-05-10"); c != 0 || total != 1 {
		t.Fatalf("Counts() = %d/%d, want 0/1", c, total)
	}
}

// =============================================================================
// Delete / Restore
// =============================================================================

func TestDelete_Idempotent(t *testing.T) {
	s := createTestStore(t)
	task, _ := s.Add("2024-05-10", "Walk")
	s.Add("2024-05-10", "Read")

	if _, ok := s.Delete("2024-05-10", task.ID); !ok {
		t.Fatal("first Delete() ok = false")
	}
	if _, ok := s.Delete("2024-05-10", task.ID); ok {
		t.Fatal("second Delete() ok = true, want no-op")
	}
	if got := len(s.Bucket("2024-05-10")); got != 1 {
		t.Fatalf("bucket length = %d, want 1", got)
	}
}

func TestDelete_LastTaskDropsKey(t *testing.T) {
	s := createTestStore(t)
	task, _ := s.Add("2024-05-10", "Walk")
	s.Delete("2024-05-10", task.ID)

	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("Keys() = %v, want empty", keys)
	}
}

func TestRestore_ReinsertsAtIndex(t *testing.T) {
	s := createTestStore(t)
	s.Add("2024-05-10", "a")
	b, _ := s.Add("2024-05-10", "b")
	s.Add("2024-05-10", "c")

	_, idx, _ := s.Get("2024-05-10", b.ID)
	s.Delete("2024-05-10", b.ID)

	if !s.Restore(b, idx) {
		t.Fatal("Restore() = false")
	}
	bucket := s.Bucket("2024-05-10")
	if bucket[1].ID != b.ID {
		t.Fatalf("restored task at %q, want position 1", bucket[1].Name)
	}
	if s.Restore(b, 0) {
		t.Fatal("Restore() of existing id should fail")
	}
}

func TestRestore_NormalizesCompletion(t *testing.T) {
	s := createTestStore(t)
	ok := s.Restore(Task{ID: "x", Name: "Done already", DateKey: "2024-05-09", Completed: true}, -1)
	if !ok {
		t.Fatal("Restore() = false")
	}
	got, _, _ := s.Get("2024-05-09", "x")
	if got.CompletedAt == nil {
		t.Fatal("completed task restored without CompletedAt")
	}
	if s.Restore(Task{ID: "y", Name: "bad", DateKey: "nope"}, -1) {
		t.Fatal("Restore() with malformed key should fail")
	}
}

// =============================================================================
// Reads
// =============================================================================

func TestBucket_ReturnsCopy(t *testing.T) {
	s := createTestStore(t)
	task, _ := s.Add("2024-05-10", "Walk")
	s.Toggle("2024-05-10", task.ID)

	bucket := s.Bucket("2024-05-10")
	bucket[0].Name = "mutated"
	*bucket[0].CompletedAt = time.Time{}

	again := s.Bucket("2024-05-10")
	if again[0].Name != "Walk" || again[0].CompletedAt.IsZero() {
		t.Fatal("Bucket() exposed internal state")
	}
}

func TestCounts_MissingBucket(t *testing.T) {
	s := createTestStore(t)
	if c, total := s.Counts("2024-01-01"); c != 0 || total != 0 {
		t.Fatalf("Counts() = %d/%d, want 0/0", c, total)
	}
}

func TestOnChange(t *testing.T) {
	s := createTestStore(t)
	var changes []Change
	s.SetOnChange(func(c Change) { changes = append(changes, c) })

	task, _ := s.Add("2024-05-10", "Walk")
	s.Toggle("2024-05-10", task.ID)
	deleted, _ := s.Delete("2024-05-10", task.ID)
	s.Delete("2024-05-10", task.ID)
	s.Restore(deleted, 0)

	want := []struct {
		op   Operation
		done bool
	}{
		{OpAdd, false},
		{OpToggle, true},
		{OpDelete, true},
		{OpRestore, true},
	}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(changes), len(want))
	}
	for i, w := range want {
		c := changes[i]
		if c.Operation != w.op {
			t.Errorf("changes[%d].Operation = %s, want %s", i, c.Operation, w.op)
		}
		if c.DateKey != "2024-05-10" || c.Task.ID != task.ID {
			t.Errorf("changes[%d] = %s/%s, want 2024-05-10/%s", i, c.DateKey, c.Task.ID, task.ID)
		}
		if c.Task.Completed != w.done {
			t.Errorf("changes[%d].Task.Completed = %v, want %v", i, c.Task.Completed, w.done)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task, _ := s.Add("2024-05-10", fmt.Sprintf("task %d", i))
			s.Toggle("2024-05-10", task.ID)
			_ = s.Keys()
			_, _ = s.Counts("2024-05-10")
		}(i)
	}
	wg.Wait()

	if c, total := s.Counts("2024-05-10"); c != 20 || total != 20 {
		t.Fatalf("Counts() = %d/%d, want 20/20", c, total)
	}
}

func TestParseDateKey(t *testing.T) {
	if _, ok := ParseDateKey("2024-02-30"); ok {
		t.Error("ParseDateKey accepted an impossible date")
	}
	d, ok := ParseDateKey("2024-02-29")
	if !ok || d.Day() != 29 {
		t.Errorf("ParseDateKey(2024-02-29) = %v, %v", d, ok)
	}
	if got := KeyFor(2024, time.March, 5); got != "2024-03-05" {
		t.Errorf("KeyFor() = %q, want 2024-03-05", got)
	}
}
