package ui

import (
	"fmt"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TaskPane lists the tasks filed under the selected day.
type TaskPane struct {
	dateKey string
	tasks   []tasks.Task
	cursor  int
	focused bool
	width   int
	height  int
	adding  bool
	input   textinput.Model
	store   *tasks.Store
	styles  *Styles

	// Key bindings
	keys      TaskKeyMap
	inputKeys InputKeyMap
}

// NewTaskPane creates a new task pane with default key bindings.
func NewTaskPane(store *tasks.Store, styles *Styles) *TaskPane {
	return NewTaskPaneWithKeys(store, styles, &config.KeysConfig{})
}

// NewTaskPaneWithKeys creates a new task pane with custom key bindings.
func NewTaskPaneWithKeys(store *tasks.Store, styles *Styles, keyCfg *config.KeysConfig) *TaskPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Width = 40

	p := &TaskPane{
		store:     store,
		styles:    styles,
		input:     ti,
		keys:      NewTaskKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
	p.SetDate(tasks.DateKey(store.Now()))
	return p
}

// SetDate switches the pane to another day's bucket.
func (p *TaskPane) SetDate(dateKey string) {
	if dateKey != p.dateKey {
		p.cursor = 0
	}
	p.dateKey = dateKey
	p.Refresh()
}

// DateKey returns the day being shown.
func (p *TaskPane) DateKey() string {
	return p.dateKey
}

// Refresh reloads the bucket from the store and adjusts cursor bounds.
func (p *TaskPane) Refresh() {
	p.tasks = p.store.Bucket(p.dateKey)
	if p.cursor >= len(p.tasks) {
		p.cursor = max(0, len(p.tasks)-1)
	}
}

// SetSize sets the pane dimensions.
func (p *TaskPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *TaskPane) SetFocused(focused bool) {
	p.focused = focused
}

// SetStyles swaps the palette after a dark mode change.
func (p *TaskPane) SetStyles(styles *Styles) {
	p.styles = styles
}

// IsFocused returns whether this pane is focused.
func (p *TaskPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in add mode.
func (p *TaskPane) IsAdding() bool {
	return p.adding
}

// Selected returns the task under the cursor.
func (p *TaskPane) Selected() (tasks.Task, bool) {
	if len(p.tasks) == 0 || p.cursor < 0 || p.cursor >= len(p.tasks) {
		return tasks.Task{}, false
	}
	return p.tasks[p.cursor], true
}

// Update handles messages for the task pane.
func (p *TaskPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case taskAddedMsg:
		p.Refresh()
		if msg.ok && msg.task.DateKey == p.dateKey {
			p.cursor = len(p.tasks) - 1
		}
		return nil

	case taskToggledMsg, taskDeletedMsg:
		p.Refresh()
		return nil
	}

	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				text := strings.TrimSpace(p.input.Value())
				p.adding = false
				p.input.Reset()
				if text == "" {
					return nil
				}
				return addTaskCmd(p.store, p.dateKey, text)

			case key.Matches(msg, p.inputKeys.Cancel):
				p.adding = false
				p.input.Reset()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	if !p.focused {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Down):
		if len(p.tasks) > 0 {
			p.cursor = min(p.cursor+1, len(p.tasks)-1)
		}

	case key.Matches(keyMsg, p.keys.Up):
		if len(p.tasks) > 0 {
			p.cursor = max(p.cursor-1, 0)
		}

	case key.Matches(keyMsg, p.keys.Top):
		p.cursor = 0

	case key.Matches(keyMsg, p.keys.Bottom):
		if len(p.tasks) > 0 {
			p.cursor = len(p.tasks) - 1
		}

	case key.Matches(keyMsg, p.keys.Add):
		p.adding = true
		p.input.Focus()
		return textinput.Blink

	case key.Matches(keyMsg, p.keys.Toggle):
		if task, ok := p.Selected(); ok {
			return toggleTaskCmd(p.store, task.DateKey, task.ID)
		}

	case key.Matches(keyMsg, p.keys.Delete):
		if task, ok := p.Selected(); ok {
			return deleteTaskCmd(p.store, task.DateKey, task.ID)
		}
	}

	return nil
}

// View renders the task pane.
func (p *TaskPane) View() string {
	var b strings.Builder

	title := "✅ TASKS"
	if d, ok := tasks.ParseDateKey(p.dateKey); ok {
		title += " · " + d.Format("Mon Jan 2")
	}
	b.WriteString(p.styles.PaneTitleStyle.Render(title))
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(p.tasks) == 0 && !p.adding {
		muted := lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true)
		b.WriteString(muted.Render("  No tasks for this day"))
		b.WriteString("\n")
		b.WriteString(muted.Render("  Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		maxTasks := p.height - 6 // title, separator, stats, input
		if maxTasks < 3 {
			maxTasks = 5
		}

		startIdx := 0
		if p.cursor >= maxTasks {
			startIdx = p.cursor - maxTasks + 1
		}

		doneCount := 0
		for i, task := range p.tasks {
			if task.Completed {
				doneCount++
			}
			if i < startIdx || i >= startIdx+maxTasks {
				continue
			}

			checkbox := p.styles.TaskCheckboxPending
			if task.Completed {
				checkbox = p.styles.TaskCheckboxDone
			}

			// Layout: [space][checkbox][space][text]
			availableTextWidth := p.width - 4 - 5
			if availableTextWidth < 5 {
				availableTextWidth = 5
			}
			text := runewidth.Truncate(task.Name, availableTextWidth, "..")

			var line string
			if i == p.cursor && p.focused && !p.adding {
				line = p.styles.TaskSelectedStyle.Render(fmt.Sprintf(" %s %s ", checkbox, text))
			} else {
				styled := p.styles.TaskPendingStyle.Render(text)
				if task.Completed {
					styled = p.styles.TaskDoneStyle.Render(text)
				}
				line = fmt.Sprintf(" %s %s", checkbox, styled)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		stats := p.styles.StatLabelStyle.Render(fmt.Sprintf("%d/%d complete", doneCount, len(p.tasks)))
		b.WriteString("  " + stats)
		b.WriteString("\n")
	}

	if p.adding {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render("+ ")
		b.WriteString(prompt + p.input.View())
		b.WriteString("\n")
	}

	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(b.String())
}

// Stats returns completion counts for the day being shown.
func (p *TaskPane) Stats() (done, total int) {
	for _, task := range p.tasks {
		if task.Completed {
			done++
		}
	}
	return done, len(p.tasks)
}
