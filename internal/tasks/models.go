package tasks

import "time"

// Task represents a single to-do item filed under one calendar day.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	DateKey     string     `json:"date_key"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Operation names the mutation reported to a change hook.
type Operation string

const (
	OpAdd     Operation = "add"
	OpToggle  Operation = "toggle"
	OpDelete  Operation = "delete"
	OpRestore Operation = "restore"
)

// Change is passed to the SetOnChange hook after every successful Add,
// Toggle, Delete or Restore. Task holds the task as it stands afterwards,
// or as it was for a delete.
type Change struct {
	Operation Operation
	DateKey   string
	Task      Task
}
