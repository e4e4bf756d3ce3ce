package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tasktrack/internal/calendar"
	"tasktrack/internal/tasks"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type calendarOptions struct {
	month  string
	monday bool
}

func addCalendar(topLevel *cobra.Command, root *rootOptions) {
	opts := &calendarOptions{}
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month grid marking days with tasks.",
		Long: `Print a month grid for the seeded store.

Fully completed days are marked with ✓, days with open tasks with •.`,
		Example: `
tasktrack calendar
tasktrack calendar --month 2024-02 --monday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := root.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			now := s.store.Now()
			year, month := now.Year(), now.Month()
			if opts.month != "" {
				t, err := time.ParseInLocation("2006-01", opts.month, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM)", opts.month)
				}
				year, month = t.Year(), t.Month()
			}

			monday := s.cfg.Settings.WeekStartsMonday()
			if cmd.Flags().Changed("monday") {
				monday = opts.monday
			}
			grid := calendar.Build(year, month, s.store, monday)
			printMonth(cmd.OutOrStdout(), grid, tasks.DateKey(now))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.month, "month", "", "month to show (YYYY-MM), default current")
	cmd.Flags().BoolVar(&opts.monday, "monday", false, "start weeks on Monday")

	topLevel.AddCommand(cmd)
}

// printMonth writes the grid with four columns per day: a two-digit day
// number, a marker and a space.
func printMonth(out io.Writer, m calendar.Month, todayKey string) {
	const width = 7 * 4

	title := m.Title()
	pad := max(0, (width-len(title))/2)
	fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", pad), color.New(color.Bold).Sprint(title))

	var header strings.Builder
	for _, l := range calendar.WeekdayLabels(m.WeekStartsMonday) {
		header.WriteString(l + "  ")
	}
	fmt.Fprintln(out, color.New(color.Faint).Sprint(strings.TrimRight(header.String(), " ")))

	done := color.New(color.FgGreen)
	open := color.New(color.FgYellow)
	current := color.New(color.Bold, color.Underline)

	for _, week := range m.Weeks() {
		var row strings.Builder
		for _, c := range week {
			if c.Blank() {
				row.WriteString("    ")
				continue
			}
			day := fmt.Sprintf("%2d", c.Day)
			if c.DateKey == todayKey {
				day = current.Sprint(day)
			}
			marker := " "
			switch {
			case c.FullyCompleted:
				marker = done.Sprint("✓")
			case c.TaskCount > 0:
				marker = open.Sprint("•")
			}
			row.WriteString(day + marker + " ")
		}
		fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}
}
