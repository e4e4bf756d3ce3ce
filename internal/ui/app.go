// Package ui provides the terminal user interface for tasktrack.
// This file contains the main App model which coordinates all panes and
// routes messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strings"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/logging"
	"tasktrack/internal/notify"
	"tasktrack/internal/stats"
	"tasktrack/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneCalendar PaneID = iota
	PaneTasks
	PaneStats
)

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows all three panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// calendarPaneWidth fits seven day columns plus padding.
const calendarPaneWidth = 7*cellWidth + 2

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                  *config.KeysConfig
	Theme                 *config.ThemeConfig
	Settings              config.Settings
	ConfirmDeletions      bool
	ShowOnboarding        bool
	NarrowLayoutThreshold int
	DesktopNotifications  bool

	// Logger receives diagnostics; nil discards them.
	Logger *log.Logger

	// Notifier delivers reminders to the desktop; nil disables it.
	Notifier notify.Notifier

	// SaveSettings persists a changed settings record; nil keeps changes in memory.
	SaveSettings func(config.Settings) error
}

// NewAppConfig derives the app configuration from the loaded config file.
func NewAppConfig(cfg *config.Config) *AppConfig {
	return &AppConfig{
		Keys:                  &cfg.Keys,
		Theme:                 &cfg.Theme,
		Settings:              cfg.Settings,
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		ShowOnboarding:        cfg.UX.ShowOnboarding,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
		DesktopNotifications:  cfg.UX.DesktopNotifications,
	}
}

// App is the main application model that coordinates all panes.
type App struct {
	store           *tasks.Store
	styles          *Styles
	config          *AppConfig
	settings        config.Settings
	calendarPane    *CalendarPane
	taskPane        *TaskPane
	statsPane       *StatsPane
	helpOverlay     *HelpOverlay
	settingsOverlay *SettingsOverlay
	notices         *NotificationPanel
	undoManager     *UndoManager
	undoBusy        bool
	confirmDel      *confirmDeleteState
	activePane      PaneID
	layoutMode      LayoutMode
	showHelp        bool
	showSettings    bool
	showWelcome     bool
	width           int
	height          int
	status          string
	statusErr       bool
	statusUntil     time.Time
	quitting        bool

	reminder    *notify.Reminder
	reminderGen int
	reminderOn  bool

	logger   *log.Logger
	notifier notify.Notifier

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap
}

type confirmDeleteState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application over an already seeded store.
func NewApp(store *tasks.Store, cfg *AppConfig) *App {
	if cfg == nil {
		def := config.Default()
		cfg = NewAppConfig(def)
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}
	if cfg.Theme == nil {
		cfg.Theme = &config.ThemeConfig{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	notifier := cfg.Notifier
	if notifier == nil || !cfg.DesktopNotifications {
		notifier = notify.Noop()
	}

	styles := NewStylesFromTheme(cfg.Theme, cfg.Settings.DarkMode)

	app := &App{
		store:           store,
		styles:          styles,
		config:          cfg,
		settings:        cfg.Settings,
		calendarPane:    NewCalendarPane(store, styles, cfg.Keys, cfg.Settings.WeekStartsMonday()),
		taskPane:        NewTaskPaneWithKeys(store, styles, cfg.Keys),
		statsPane:       NewStatsPane(store, styles, cfg.Keys),
		helpOverlay:     NewHelpOverlay(styles, cfg.Keys),
		settingsOverlay: NewSettingsOverlay(cfg.Settings, styles, cfg.Keys),
		notices:         NewNotificationPanel(styles),
		undoManager:     NewUndoManager(),
		activePane:      PaneCalendar,
		showWelcome:     cfg.ShowOnboarding && store.Len() == 0,
		reminder:        &notify.Reminder{},
		logger:          logger,
		notifier:        notifier,
		keys:            NewGlobalKeyMap(cfg.Keys),
		helpKeys:        DefaultHelpKeyMap(),
	}

	app.setActivePane(PaneCalendar)
	return app
}

// Init starts the clock and, when enabled, the daily reminder schedule.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tickCmd(), a.startReminder())
}

// startReminder begins a new minute schedule with an immediate first check.
func (a *App) startReminder() tea.Cmd {
	if !a.settings.NotificationsEnabled {
		return nil
	}
	a.reminderGen++
	a.reminderOn = true
	a.logger.Debug("reminder schedule started", "at", a.settings.ReminderLabel())
	return tea.Batch(reminderNowCmd(a.reminderGen, a.store.Now()), reminderTickCmd(a.reminderGen))
}

// stopReminder lets the pending tick of the current schedule lapse.
func (a *App) stopReminder() {
	if !a.reminderOn {
		return
	}
	a.reminderOn = false
	a.reminderGen++
	a.logger.Debug("reminder schedule stopped")
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Store operation results are processed regardless of which pane is
	// active; they also feed the undo history and notices.
	switch msg := msg.(type) {
	case taskAddedMsg:
		if !msg.ok {
			a.SetStatus("Add task: name must not be blank", true)
		} else {
			a.undoManager.Push(NewAddTaskAction(a.store, msg.task))
			a.notices.Show("✅ Task added successfully!", a.settings.Panel)
		}
		return a, a.taskPane.Update(msg)

	case taskToggledMsg:
		if !msg.ok {
			a.SetStatus("Toggle task: task not found", true)
		} else {
			a.undoManager.Push(NewToggleTaskAction(a.store, msg.before, msg.task))
		}
		return a, a.taskPane.Update(msg)

	case taskDeletedMsg:
		if !msg.ok {
			a.SetStatus("Delete task: task not found", true)
		} else {
			a.undoManager.Push(NewDeleteTaskAction(a.store, msg.task, msg.index))
			a.notices.Show("🗑️ Task deleted", a.settings.Panel)
		}
		return a, a.taskPane.Update(msg)

	case daySelectedMsg:
		a.taskPane.SetDate(msg.dateKey)
		a.setActivePane(PaneTasks)
		return a, nil

	case settingsChangedMsg:
		return a, a.applySettings(msg.settings)

	case settingsClosedMsg:
		a.showSettings = false
		return a, nil

	case settingsSavedMsg:
		if msg.err != nil {
			a.SetStatus("Save settings: "+msg.err.Error(), true)
			a.logger.Error("save settings", "err", msg.err)
		}
		return a, nil

	case reminderTickMsg:
		return a, a.handleReminder(msg)

	case desktopNotifiedMsg:
		if msg.err != nil {
			a.logger.Warn("desktop notification failed", "err", msg.err)
		}
		return a, nil

	case undoResultMsg:
		a.undoBusy = false
		if msg.err != nil {
			a.SetStatus("Undo failed: "+msg.err.Error(), true)
		} else if msg.desc != "" {
			a.SetStatus("Undid: "+msg.desc, false)
		} else {
			a.SetStatus("Nothing to undo", false)
		}
		a.taskPane.Refresh()
		return a, nil

	case redoResultMsg:
		a.undoBusy = false
		if msg.err != nil {
			a.SetStatus("Redo failed: "+msg.err.Error(), true)
		} else if msg.desc != "" {
			a.SetStatus("Redid: "+msg.desc, false)
		} else {
			a.SetStatus("Nothing to redo", false)
		}
		a.taskPane.Refresh()
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.notices.Blocking() {
			switch msg.String() {
			case "enter", "esc", " ", "y":
				a.notices.Dismiss()
			}
			return a, nil
		}

		if a.confirmDel != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirmDel.cmd
				a.confirmDel = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirmDel = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
			}
			return a, nil
		}

		if a.showSettings {
			return a, a.settingsOverlay.Update(msg)
		}

		inInputMode := a.taskPane.IsAdding() || a.statsPane.IsEntering()
		if !inInputMode {
			if a.config.ConfirmDeletions && a.activePane == PaneTasks && key.Matches(msg, a.taskPane.keys.Delete) {
				task, ok := a.taskPane.Selected()
				if !ok {
					a.SetStatus("No task selected", true)
					return a, nil
				}
				a.confirmDel = &confirmDeleteState{
					title: "Delete task?",
					body:  truncateText(task.Name, 60),
					cmd:   deleteTaskCmd(a.store, task.DateKey, task.ID),
				}
				return a, nil
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.Settings):
				a.settingsOverlay.Reset(a.settings)
				a.showSettings = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.switchPane()
				return a, nil

			case key.Matches(msg, a.keys.Pane1):
				a.setActivePane(PaneCalendar)
				return a, nil

			case key.Matches(msg, a.keys.Pane2):
				a.setActivePane(PaneTasks)
				return a, nil

			case key.Matches(msg, a.keys.Pane3):
				a.setActivePane(PaneStats)
				return a, nil

			case key.Matches(msg, a.keys.Undo):
				if a.undoBusy {
					a.SetStatus("Undo: busy", true)
					return a, nil
				}
				a.undoBusy = true
				return a, undoCmd(a.undoManager)

			case key.Matches(msg, a.keys.Redo):
				if a.undoBusy {
					a.SetStatus("Redo: busy", true)
					return a, nil
				}
				a.undoBusy = true
				return a, redoCmd(a.undoManager)
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tickMsg:
		now := time.Time(msg)
		if a.status != "" && !a.statusUntil.IsZero() && now.After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		a.notices.Expire(now)
		return a, tickCmd()
	}

	if a.showHelp {
		return a, nil
	}
	if a.showSettings {
		return a, a.settingsOverlay.Update(msg)
	}

	// Forward to active pane
	switch a.activePane {
	case PaneCalendar:
		return a, a.calendarPane.Update(msg)
	case PaneTasks:
		return a, a.taskPane.Update(msg)
	case PaneStats:
		return a, a.statsPane.Update(msg)
	}
	return a, nil
}

// handleReminder runs the minute check and keeps the schedule going.
func (a *App) handleReminder(msg reminderTickMsg) tea.Cmd {
	if msg.gen != a.reminderGen || !a.reminderOn {
		return nil
	}

	var cmds []tea.Cmd
	if !msg.once {
		cmds = append(cmds, reminderTickCmd(msg.gen))
	}

	text, fire := a.reminder.Check(msg.at, a.settings, a.store)
	if fire {
		a.logger.Info("reminder fired", "message", text, "panel", a.settings.Panel)
		a.notices.Show(text, a.settings.Panel)
		cmds = append(cmds, desktopNotifyCmd(a.notifier, text, a.settings))
	}
	return tea.Batch(cmds...)
}

// applySettings replaces the settings record and re-derives everything
// that depends on it.
func (a *App) applySettings(s config.Settings) tea.Cmd {
	prev := a.settings
	a.settings = s

	if prev.DarkMode != s.DarkMode {
		a.setStyles(NewStylesFromTheme(a.config.Theme, s.DarkMode))
	}
	if prev.ShowSunday != s.ShowSunday {
		a.calendarPane.SetWeekStartsMonday(s.WeekStartsMonday())
	}

	var cmds []tea.Cmd
	switch {
	case s.NotificationsEnabled && !a.reminderOn:
		cmds = append(cmds, a.startReminder())
	case !s.NotificationsEnabled:
		a.stopReminder()
	}

	if a.config.SaveSettings != nil {
		cmds = append(cmds, saveSettingsCmd(a.config.SaveSettings, s))
	}
	a.logger.Debug("settings changed", "settings", fmt.Sprintf("%+v", s))
	return tea.Batch(cmds...)
}

// setStyles propagates a new palette to every component.
func (a *App) setStyles(styles *Styles) {
	a.styles = styles
	a.calendarPane.SetStyles(styles)
	a.taskPane.SetStyles(styles)
	a.statsPane.SetStyles(styles)
	a.helpOverlay.SetStyles(styles)
	a.settingsOverlay.SetStyles(styles)
	a.notices.SetStyles(styles)
}

// Settings returns the current settings record.
func (a *App) Settings() config.Settings {
	return a.settings
}

// switchPane cycles through panes.
func (a *App) switchPane() {
	a.setActivePane((a.activePane + 1) % 3)
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(pane PaneID) {
	a.activePane = pane

	a.calendarPane.SetFocused(pane == PaneCalendar)
	a.taskPane.SetFocused(pane == PaneTasks)
	a.statsPane.SetFocused(pane == PaneStats)
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar and help bar
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	a.helpOverlay.SetSize(a.width, a.height)
	a.settingsOverlay.SetSize(a.width, a.height)
	a.notices.SetSize(a.width, a.height)

	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 100
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}
		paneWidth := max(calendarPaneWidth, a.width-4)

		a.calendarPane.SetSize(paneWidth, narrowHeight)
		a.taskPane.SetSize(paneWidth, narrowHeight)
		a.statsPane.SetSize(paneWidth, narrowHeight)
		return
	}

	// Wide mode: three panes side-by-side. Borders take two columns per
	// pane and the gaps one each.
	a.layoutMode = LayoutWide
	totalWidth := a.width - 8
	statsWidth := max(30, min(44, (totalWidth-calendarPaneWidth)/2))
	tasksWidth := totalWidth - calendarPaneWidth - statsWidth

	a.calendarPane.SetSize(calendarPaneWidth, contentHeight)
	a.taskPane.SetSize(tasksWidth, contentHeight)
	a.statsPane.SetSize(statsWidth, contentHeight)
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.notices.Visible(config.PanelModal) {
		return a.notices.ModalView()
	}

	if a.confirmDel != nil {
		return a.renderConfirmDelete()
	}

	if a.showHelp {
		return a.helpOverlay.View()
	}

	if a.showSettings {
		return a.settingsOverlay.View()
	}

	var b strings.Builder

	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")

	if alert := a.notices.AlertView(); alert != "" {
		b.WriteString(alert)
		b.WriteString("\n")
	}

	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	b.WriteString(a.renderHelpBar())

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth(a.width))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to tasktrack"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Pick a day on the calendar and press enter.\n"))
	b.WriteString(bodyStyle.Render("Add your first task with 'a'. ? opens help.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirmDelete() string {
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth(a.width))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirmDel.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirmDel.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] delete    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderWideContent renders all three panes side by side.
func (a *App) renderWideContent() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		a.calendarPane.View(), " ",
		a.taskPane.View(), " ",
		a.statsPane.View(),
	)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")

	switch a.activePane {
	case PaneCalendar:
		b.WriteString(a.calendarPane.View())
	case PaneTasks:
		b.WriteString(a.taskPane.View())
	case PaneStats:
		b.WriteString(a.statsPane.View())
	}

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneCalendar, "Calendar"},
		{PaneTasks, "Tasks"},
		{PaneStats, "Stats"},
	}

	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		if tab.id == a.activePane {
			parts = append(parts, activeTabStyle.Render("["+tab.label+"]"))
		} else {
			parts = append(parts, inactiveTabStyle.Render(" "+tab.label+" "))
		}
	}

	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}
	return tabBar
}

// renderGoodbye shows an exit message with today's progress.
func (a *App) renderGoodbye() string {
	today := stats.ForDay(a.store, a.store.Now())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")

	if today.Total > 0 {
		b.WriteString("  Today's progress:\n")
		b.WriteString(fmt.Sprintf("     Tasks:  %d/%d (%d%%)\n", today.Completed, today.Total, today.Percent))
		if streak := stats.CurrentStreak(a.store, a.store.Now()); streak > 0 {
			b.WriteString(fmt.Sprintf("     Streak: %s\n", stats.Days(streak)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with today's progress and the
// reminder state.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" tasktrack ")

	now := a.store.Now()
	today := stats.ForDay(a.store, now)
	var items []string
	if today.Total > 0 {
		items = append(items, fmt.Sprintf("Today: %d/%d", today.Completed, today.Total))
	}
	if streak := stats.CurrentStreak(a.store, now); streak > 0 {
		items = append(items, fmt.Sprintf("🔥 %d", streak))
	}
	summary := a.styles.StatLabelStyle.Render(strings.Join(items, "  "))

	reminder := "⏰ off"
	if a.settings.NotificationsEnabled {
		reminder = "⏰ " + a.settings.ReminderLabel()
	}
	reminder = a.styles.StatLabelStyle.Render(reminder)

	date := a.styles.DateStyle.Render(now.Format("Mon Jan 2 · 15:04"))

	used := lipgloss.Width(title) + lipgloss.Width(summary) + lipgloss.Width(reminder) + lipgloss.Width(date)
	spacer := a.width - used - 6
	if spacer < 2 {
		spacer = 2
	}

	var parts []string
	parts = append(parts, title)
	if summary != "" {
		parts = append(parts, "  "+summary)
	}
	parts = append(parts, strings.Repeat(" ", spacer/2), reminder)
	parts = append(parts, strings.Repeat(" ", spacer-spacer/2), date)
	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if banner := a.notices.BannerView(); banner != "" {
		return banner
	}

	if a.taskPane.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	if a.statsPane.IsEntering() {
		return a.styles.RenderHelp(
			"enter", "next/apply",
			"esc", "cancel",
		)
	}

	switch a.activePane {
	case PaneCalendar:
		return a.styles.RenderHelp(
			"hjkl", "move",
			"[/]", "month",
			"t", "today",
			"enter", "open",
			",", "settings",
			"?", "help",
		)
	case PaneTasks:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "done",
			"x", "del",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneStats:
		return a.styles.RenderHelp(
			"v", "view",
			"c", "custom",
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// Run starts the Bubble Tea program over the given store.
func Run(store *tasks.Store, cfg *AppConfig) error {
	app := NewApp(store, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
