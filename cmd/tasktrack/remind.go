package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasktrack/internal/notify"

	"github.com/spf13/cobra"
)

type remindOptions struct {
	once bool
}

func addRemind(topLevel *cobra.Command, root *rootOptions) {
	opts := &remindOptions{}
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the daily reminder without the TUI.",
		Long: `Check the reminder on every wall-clock minute and print it when today
still has open tasks at the configured time. Desktop notifications are
sent when enabled in the config.

With --once a single check is made against the current minute.`,
		Example: `
tasktrack remind
tasktrack remind --once --seed fixture --seed-file tasks.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := root.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			settings := s.cfg.Settings
			if !settings.NotificationsEnabled {
				return fmt.Errorf("notifications are disabled in %s", s.configPath)
			}

			notifier := notify.Noop()
			if s.cfg.UX.DesktopNotifications {
				notifier = notify.New()
			}
			reminder := &notify.Reminder{}
			check := func(now time.Time) {
				msg, ok := reminder.Check(now, settings, s.store)
				if !ok {
					s.logger.Debug("reminder not due", "now", now.Format("15:04"), "at", settings.ReminderLabel())
					return
				}
				s.logger.Info("reminder fired", "date", now.Format("2006-01-02"))
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", now.Format("15:04"), msg)
				if err := notify.Deliver(notifier, notify.Title, msg, settings); err != nil {
					s.logger.Warn("desktop notification failed", "err", err)
				}
			}

			if opts.once {
				check(s.store.Now())
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s.logger.Info("reminder scheduled", "at", settings.ReminderLabel())
			err = notify.NewScheduler(check).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.once, "once", false, "check once and exit")

	topLevel.AddCommand(cmd)
}
