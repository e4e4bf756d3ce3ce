package tasks

import (
	"strings"
	"testing"
)

// FuzzAdd checks that Add never panics and accepts exactly the non-blank
// names filed under a valid key.
func FuzzAdd(f *testing.F) {
	f.Add("2024-05-10", "")
	f.Add("2024-05-10", "Morning workout")
	f.Add("2024-05-10", "   ")
	f.Add("2024-05-10", strings.Repeat("a", 201))
	f.Add("2024-05-10", strings.Repeat("日", 67))
	f.Add("2024-02-30", "Leap check")
	f.Add("10/05/2024", "Wrong key format")
	f.Add("2024-05-10", "Task with unicode: 🎉🚀")
	f.Add("2024-05-10", "\x00\x01\x02")

	f.Fuzz(func(t *testing.T, dateKey, name string) {
		store := createTestStore(t)

		task, ok := store.Add(dateKey, name)

		trimmed := strings.TrimSpace(name)
		_, validKey := ParseDateKey(dateKey)
		wantOK := trimmed != "" && validKey
		if ok != wantOK {
			t.Fatalf("Add(%q, %q) ok = %v, want %v", dateKey, name, ok, wantOK)
		}
		if !ok {
			if store.Len() != 0 {
				t.Fatalf("rejected add changed the store: len = %d", store.Len())
			}
			return
		}

		if task.Name != trimmed {
			t.Errorf("name = %q, want %q", task.Name, trimmed)
		}
		if task.Completed || task.CompletedAt != nil {
			t.Error("new task should be open")
		}

		// Toggling twice restores the original state.
		store.Toggle(dateKey, task.ID)
		store.Toggle(dateKey, task.ID)
		got, _, found := store.Get(dateKey, task.ID)
		if !found || got.Completed || got.CompletedAt != nil {
			t.Errorf("double toggle should reopen the task, got %+v", got)
		}

		// Deleting twice is a no-op the second time.
		store.Delete(dateKey, task.ID)
		if _, ok := store.Delete(dateKey, task.ID); ok {
			t.Error("second delete should report ok=false")
		}
	})
}
