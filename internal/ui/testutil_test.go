package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// testNow is the fixed "today" used across UI tests: Friday 10 May 2024.
var testNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.Local)

const testToday = "2024-05-10"

// setupTest prepares the test environment for deterministic rendering.
// It disables colors so assertions can match plain text.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStore creates an empty store with a fixed clock and sequential IDs.
func createTestStore(t *testing.T) *tasks.Store {
	t.Helper()
	store := tasks.New()
	store.SetNowFunc(func() time.Time { return testNow })
	n := 0
	store.SetIDFunc(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	})
	return store
}

// mustAdd adds a task or fails the test.
func mustAdd(t *testing.T, store *tasks.Store, dateKey, name string) tasks.Task {
	t.Helper()
	task, ok := store.Add(dateKey, name)
	if !ok {
		t.Fatalf("Add(%q, %q) rejected", dateKey, name)
	}
	return task
}

// createTestStyles creates the light palette with no theme overrides.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{}, false)
}

// createTestApp builds an app sized for the wide layout with onboarding
// and delete confirmation off.
func createTestApp(t *testing.T, store *tasks.Store) *App {
	t.Helper()
	app := NewApp(store, &AppConfig{
		Keys:                  &config.KeysConfig{},
		Theme:                 &config.ThemeConfig{},
		Settings:              config.DefaultSettings(),
		NarrowLayoutThreshold: 80,
	})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

// keyMsg builds a key press for a single rune or a named key.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText feeds each rune of s to update.
func typeText(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// runCmd executes cmd and returns its message, or nil for a nil cmd.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
