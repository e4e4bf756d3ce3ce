// Package ui provides the terminal user interface for tasktrack.
// This file contains tea.Cmd factories that wrap task store operations and
// the reminder schedule. Each command returns a corresponding message type
// defined in messages.go.
package ui

import (
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/notify"
	"tasktrack/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Task Commands
// =============================================================================

// addTaskCmd returns a command that appends a task to the given day.
func addTaskCmd(store *tasks.Store, dateKey, name string) tea.Cmd {
	return func() tea.Msg {
		task, ok := store.Add(dateKey, name)
		return taskAddedMsg{task: task, ok: ok}
	}
}

// toggleTaskCmd returns a command that flips a task's completion.
func toggleTaskCmd(store *tasks.Store, dateKey, id string) tea.Cmd {
	return func() tea.Msg {
		before, _, _ := store.Get(dateKey, id)
		task, ok := store.Toggle(dateKey, id)
		return taskToggledMsg{before: before, task: task, ok: ok}
	}
}

// deleteTaskCmd returns a command that removes a task.
// The task and its position are captured first so the deletion can be undone.
func deleteTaskCmd(store *tasks.Store, dateKey, id string) tea.Cmd {
	return func() tea.Msg {
		_, index, _ := store.Get(dateKey, id)
		task, ok := store.Delete(dateKey, id)
		return taskDeletedMsg{task: task, index: index, ok: ok}
	}
}

// =============================================================================
// Undo/Redo Commands
// =============================================================================

// undoCmd returns a command that performs an undo operation.
func undoCmd(manager *UndoManager) tea.Cmd {
	return func() tea.Msg {
		desc, err := manager.Undo()
		return undoResultMsg{desc: desc, err: err}
	}
}

// redoCmd returns a command that performs a redo operation.
func redoCmd(manager *UndoManager) tea.Cmd {
	return func() tea.Msg {
		desc, err := manager.Redo()
		return redoResultMsg{desc: desc, err: err}
	}
}

// =============================================================================
// Clock Commands
// =============================================================================

// tickMsg is sent every second to refresh the clock and expire status text.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reminderTickCmd schedules the next reminder check on the minute boundary.
func reminderTickCmd(gen int) tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return reminderTickMsg{gen: gen, at: t}
	})
}

// reminderNowCmd checks immediately instead of waiting for the next minute.
func reminderNowCmd(gen int, now time.Time) tea.Cmd {
	return func() tea.Msg {
		return reminderTickMsg{gen: gen, at: now, once: true}
	}
}

// desktopNotifyCmd hands a reminder to the OS notifier off the event loop.
func desktopNotifyCmd(n notify.Notifier, message string, s config.Settings) tea.Cmd {
	return func() tea.Msg {
		return desktopNotifiedMsg{err: notify.Deliver(n, notify.Title, message, s)}
	}
}

// =============================================================================
// Settings Commands
// =============================================================================

// saveSettingsCmd persists the settings record through save.
func saveSettingsCmd(save func(config.Settings) error, s config.Settings) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{err: save(s)}
	}
}
