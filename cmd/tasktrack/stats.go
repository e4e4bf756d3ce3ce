package main

import (
	"fmt"
	"io"

	"tasktrack/internal/stats"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

type statsOptions struct {
	from string
	to   string
	json bool
}

func addStats(topLevel *cobra.Command, root *rootOptions) {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print completion statistics for the seeded store.",
		Example: `
tasktrack stats
tasktrack stats --from 2024-05-01 --to 2024-05-31
tasktrack stats --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			custom, err := parseOptionalWindow(opts.from, opts.to)
			if err != nil {
				return err
			}
			s, err := root.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			snap := stats.Compute(s.store, s.store.Now(), custom)
			if opts.json {
				data, err := stats.FormatSnapshotJSON(snap)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			printSnapshot(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "custom range end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the snapshot as JSON")

	topLevel.AddCommand(cmd)
}

// parseOptionalWindow returns nil when neither bound is given.
func parseOptionalWindow(from, to string) (*stats.Window, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("--from and --to must be given together")
	}
	w, err := stats.ParseWindow(from, to)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func printSnapshot(out io.Writer, snap stats.Snapshot) {
	bold := color.New(color.Bold)
	fmt.Fprintf(out, "%s %s\n\n", bold.Sprint("Statistics as of"), snap.AsOf.Format("Mon Jan 2, 2006"))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("PERIOD", "DONE", "TOTAL", "PERCENT")
	addTotalsRow(tbl, "Today", snap.Today)
	addTotalsRow(tbl, "Last 7 days", snap.Weekly)
	addTotalsRow(tbl, "Last 30 days", snap.Monthly)
	if snap.Custom != nil && snap.CustomWindow != nil {
		addTotalsRow(tbl, snap.CustomWindow.String(), *snap.Custom)
	}
	fmt.Fprintln(out, tbl)
	fmt.Fprintln(out)

	summary := labelTable(
		[2]string{"Current streak", stats.Days(snap.CurrentStreak)},
		[2]string{"Longest streak", stats.Days(snap.LongestStreak)},
		[2]string{"Avg. completion", stats.FormatDuration(snap.AvgCompletion)},
		[2]string{"Most productive", stats.FormatHour(snap.MostProductiveHour)},
	)
	fmt.Fprintln(out, summary)
}

func addTotalsRow(tbl *uitable.Table, label string, t stats.Totals) {
	tbl.AddRow(label, t.Completed, t.Total, percentColor(t.Percent).Sprintf("%d%%", t.Percent))
}

func labelTable(rows ...[2]string) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		tbl.AddRow(r[0]+":", r[1])
	}
	return tbl
}

// percentColor grades a completion percentage.
func percentColor(p int) *color.Color {
	switch {
	case p >= 80:
		return color.New(color.FgGreen)
	case p >= 50:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
