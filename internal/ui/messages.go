// Package ui provides the terminal user interface for tasktrack.
// This file defines message types for store operations using the Bubble Tea
// command pattern. Every mutation goes through a command that returns one
// of these messages so panes refresh from a single place.
package ui

import (
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/tasks"
)

// =============================================================================
// Undo/Redo Messages
// =============================================================================

// undoResultMsg is sent when an undo operation completes.
type undoResultMsg struct {
	desc string
	err  error
}

// redoResultMsg is sent when a redo operation completes.
type redoResultMsg struct {
	desc string
	err  error
}

// =============================================================================
// Task Messages
// =============================================================================

// taskAddedMsg is sent after an add attempt. ok is false when the store
// rejected the name.
type taskAddedMsg struct {
	task tasks.Task
	ok   bool
}

// taskToggledMsg is sent after a completion toggle.
type taskToggledMsg struct {
	before tasks.Task
	task   tasks.Task // state after the toggle
	ok     bool
}

// taskDeletedMsg is sent after a delete attempt.
type taskDeletedMsg struct {
	task  tasks.Task // full task for restoration on undo
	index int        // position in its bucket before removal
	ok    bool
}

// =============================================================================
// Calendar Messages
// =============================================================================

// daySelectedMsg is sent when the user opens a day from the calendar.
type daySelectedMsg struct {
	dateKey string
}

// =============================================================================
// Settings Messages
// =============================================================================

// settingsChangedMsg carries the replacement settings record.
type settingsChangedMsg struct {
	settings config.Settings
}

// settingsClosedMsg is sent when the settings overlay is dismissed.
type settingsClosedMsg struct{}

// settingsSavedMsg reports the outcome of persisting settings.
type settingsSavedMsg struct {
	err error
}

// =============================================================================
// Reminder Messages
// =============================================================================

// reminderTickMsg fires on each wall-clock minute while reminders are on.
// gen ties the tick to the schedule that produced it so a stopped schedule
// dies out after its pending tick. once marks the immediate check made when
// a schedule starts; it does not reschedule.
type reminderTickMsg struct {
	gen  int
	at   time.Time
	once bool
}

// desktopNotifiedMsg reports the outcome of an OS notification.
type desktopNotifiedMsg struct {
	err error
}
