package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"tasktrack/internal/config"
	"tasktrack/internal/logging"
	"tasktrack/internal/notify"
	"tasktrack/internal/seed"
	"tasktrack/internal/tasks"
	"tasktrack/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	seed       string
	seedFile   string
	seedDays   int
	debug      bool
	logFile    string
}

// session is the state a command runs against: effective config, a seeded
// store and a logger.
type session struct {
	cfg        *config.Config
	configPath string
	store      *tasks.Store
	logger     *log.Logger
	closer     io.Closer

	saveMu sync.Mutex
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tasktrack",
		Short: "Daily task tracker with a calendar, statistics and reminders.",
		Long: `tasktrack is a keyboard-driven terminal app for daily to-do lists.

Tasks are filed under calendar days. A month calendar marks days that are
fully completed, a stats pane summarizes weekly, monthly or custom ranges
with streaks, and a daily reminder nags about open tasks.

Tasks live in memory for the session. At startup the store is seeded from
random sample data, an empty list, a JSON fixture, or a Taskwarrior or
Todoist export.`,
		Example: `
# Start the app with sample data
tasktrack

# Start empty
tasktrack --seed none

# Load a Todoist CSV backup
tasktrack --seed todoist --seed-file ~/Downloads/todoist.csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := opts.open(nil)
			if err != nil {
				return err
			}
			defer s.close()
			return s.runTUI()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	flags.StringVar(&opts.seed, "seed", "", "seed strategy: one of sample, none, fixture, taskwarrior, todoist")
	flags.StringVar(&opts.seedFile, "seed-file", "", "input file for the fixture, taskwarrior and todoist strategies")
	flags.IntVar(&opts.seedDays, "seed-days", 0, "days of sample data to generate")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")

	addStats(cmd, opts)
	addCalendar(cmd, opts)
	addExport(cmd, opts)
	addRemind(cmd, opts)
	addConfig(cmd, opts)
	addVersion(cmd)

	return cmd
}

// resolvedConfigPath returns the --config value or the default location.
func (o *rootOptions) resolvedConfigPath() string {
	if o.configPath != "" {
		return config.ExpandPath(o.configPath)
	}
	return config.Path()
}

// loadConfig reads the config file and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	if o.seed != "" {
		cfg.Seed.Strategy = o.seed
	}
	if o.seedFile != "" {
		cfg.Seed.Path = o.seedFile
	}
	if o.seedDays > 0 {
		cfg.Seed.Days = o.seedDays
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	return cfg, nil
}

// open loads config, builds the logger and seeds a fresh store.
// logOut receives logs when no log file is configured; nil discards them.
func (o *rootOptions) open(logOut io.Writer) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logOpts := logging.FromConfig(cfg.Log)
	logOpts.Debug = o.debug
	logOpts.Output = logOut
	logger, closer, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:        cfg,
		configPath: o.resolvedConfigPath(),
		store:      tasks.New(),
		logger:     logger,
		closer:     closer,
	}
	logger.Debug("config loaded", "path", s.configPath)

	seeder, err := seed.ByName(cfg.Seed.Strategy, cfg.Seed.Path, cfg.Seed.Days)
	if err != nil {
		s.close()
		return nil, err
	}
	result, err := seeder.Seed(s.store)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("seed %s: %w", seeder.Name(), err)
	}
	logger.Info("store seeded", "strategy", seeder.Name(), "seeded", result.Seeded, "skipped", result.Skipped)
	for _, e := range result.Errors {
		logger.Warn("seed", "err", e)
	}

	s.store.SetOnChange(func(c tasks.Change) {
		logger.Debug("store change", "op", c.Operation, "date", c.DateKey, "id", c.Task.ID, "completed", c.Task.Completed)
	})

	return s, nil
}

func (s *session) close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}

// saveSettings persists a settings record changed in the TUI.
func (s *session) saveSettings(settings config.Settings) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.cfg.Settings = settings
	if err := s.cfg.SaveTo(s.configPath); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.logger.Debug("settings saved", "path", s.configPath)
	return nil
}

// runTUI starts the interactive app.
func (s *session) runTUI() error {
	appCfg := ui.NewAppConfig(s.cfg)
	appCfg.Logger = s.logger
	appCfg.Notifier = notify.New()
	appCfg.SaveSettings = s.saveSettings

	if err := ui.Run(s.store, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		return err
	}
	return nil
}
