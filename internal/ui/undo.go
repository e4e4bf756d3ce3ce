// Package ui provides the terminal user interface for tasktrack.
// This file implements undo/redo for task mutations using a command pattern
// with the affected task captured at the time of the change.
package ui

import (
	"errors"
	"sync"

	"tasktrack/internal/tasks"

	"github.com/mattn/go-runewidth"
)

// maxHistorySize limits the undo stack to prevent unbounded memory growth.
const maxHistorySize = 50

// UndoableAction represents an action that can be undone.
// It captures the state needed to reverse the operation.
type UndoableAction struct {
	Description string       // Human-readable description for status messages
	Undo        func() error // Function to reverse the action
	Redo        func() error // Function to redo the action (optional)
}

// UndoManager maintains the undo/redo history stacks.
type UndoManager struct {
	mu        sync.Mutex
	undoStack []*UndoableAction
	redoStack []*UndoableAction
}

// NewUndoManager creates a new UndoManager instance.
func NewUndoManager() *UndoManager {
	return &UndoManager{
		undoStack: make([]*UndoableAction, 0, maxHistorySize),
		redoStack: make([]*UndoableAction, 0, maxHistorySize),
	}
}

// Push adds an undoable action to the history.
// Clears the redo stack since a new action invalidates redo history.
func (m *UndoManager) Push(action *UndoableAction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Clear redo stack on new action
	m.redoStack = m.redoStack[:0]

	// Enforce max size (remove oldest if full)
	if len(m.undoStack) >= maxHistorySize {
		m.undoStack = m.undoStack[1:]
	}

	m.undoStack = append(m.undoStack, action)
}

// CanUndo returns true if there are actions to undo.
func (m *UndoManager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undoStack) > 0
}

// CanRedo returns true if there are actions to redo.
func (m *UndoManager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redoStack) > 0
}

// Undo reverses the most recent action and returns its description.
// Returns empty string and nil error if nothing to undo. Actions without a
// Redo func are dropped from history once undone.
func (m *UndoManager) Undo() (string, error) {
	return m.step(&m.undoStack, &m.redoStack, func(a *UndoableAction) func() error {
		return a.Undo
	})
}

// Redo reapplies the most recently undone action and returns its description.
// Returns empty string and nil error if nothing to redo.
func (m *UndoManager) Redo() (string, error) {
	return m.step(&m.redoStack, &m.undoStack, func(a *UndoableAction) func() error {
		return a.Redo
	})
}

// step pops the top of from, runs it outside the lock, and moves it onto to.
// A failed run leaves the action where it was.
func (m *UndoManager) step(from, to *[]*UndoableAction, pick func(*UndoableAction) func() error) (string, error) {
	m.mu.Lock()
	if len(*from) == 0 {
		m.mu.Unlock()
		return "", nil
	}
	action := (*from)[len(*from)-1]
	*from = (*from)[:len(*from)-1]
	m.mu.Unlock()

	err := pick(action)()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		*from = append(*from, action)
		return "", err
	}
	if action.Redo != nil {
		*to = append(*to, action)
	}
	return action.Description, nil
}

// Clear removes all undo/redo history.
func (m *UndoManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undoStack = m.undoStack[:0]
	m.redoStack = m.redoStack[:0]
}

// =============================================================================
// Undoable Action Factories
// =============================================================================

// errTaskGone is returned when the task an action refers to has since been
// removed or replaced in the store.
var errTaskGone = errors.New("task no longer exists")

func ensure(ok bool) error {
	if !ok {
		return errTaskGone
	}
	return nil
}

// NewAddTaskAction creates an undoable action for adding a task.
// Redo puts the same task back at the end of its bucket.
func NewAddTaskAction(store *tasks.Store, task tasks.Task) *UndoableAction {
	return &UndoableAction{
		Description: "Added: " + truncateText(task.Name, 20),
		Undo: func() error {
			_, ok := store.Delete(task.DateKey, task.ID)
			return ensure(ok)
		},
		Redo: func() error {
			return ensure(store.Restore(task, -1))
		},
	}
}

// replaceTask swaps the stored copy of t for t itself, keeping its position.
// CompletedAt comes back exactly as captured instead of being re-stamped.
func replaceTask(store *tasks.Store, t tasks.Task) error {
	_, index, ok := store.Get(t.DateKey, t.ID)
	if !ok {
		return errTaskGone
	}
	if _, ok := store.Delete(t.DateKey, t.ID); !ok {
		return errTaskGone
	}
	return ensure(store.Restore(t, index))
}

// NewToggleTaskAction creates an undoable action for a completion toggle.
// before and after are the task on either side of the toggle.
func NewToggleTaskAction(store *tasks.Store, before, after tasks.Task) *UndoableAction {
	desc := "Completed: " + truncateText(after.Name, 20)
	if !after.Completed {
		desc = "Uncompleted: " + truncateText(after.Name, 20)
	}
	return &UndoableAction{
		Description: desc,
		Undo:        func() error { return replaceTask(store, before) },
		Redo:        func() error { return replaceTask(store, after) },
	}
}

// NewDeleteTaskAction creates an undoable action for task deletion.
// The task is captured before deletion so it can be restored in place.
func NewDeleteTaskAction(store *tasks.Store, task tasks.Task, index int) *UndoableAction {
	return &UndoableAction{
		Description: "Deleted task: " + truncateText(task.Name, 20),
		Undo: func() error {
			return ensure(store.Restore(task, index))
		},
		Redo: func() error {
			_, ok := store.Delete(task.DateKey, task.ID)
			return ensure(ok)
		},
	}
}

// truncateText shortens text to maxLen with ellipsis if needed.
func truncateText(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(text, maxLen, "..")
}
