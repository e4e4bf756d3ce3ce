package stats

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FormatJSON formats a report as indented JSON.
func FormatJSON(report *Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// FormatSnapshotJSON formats a bare snapshot as indented JSON.
func FormatSnapshotJSON(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// FormatMarkdown renders a report as a human-readable Markdown document.
func FormatMarkdown(report *Report) string {
	var b strings.Builder
	snap := report.Snapshot

	fmt.Fprintf(&b, "# Task report: %s\n\n", report.Window)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Today:** %s\n", totalsLine(snap.Today))
	fmt.Fprintf(&b, "- **Last 7 days:** %s\n", totalsLine(snap.Weekly))
	fmt.Fprintf(&b, "- **Last 30 days:** %s\n", totalsLine(snap.Monthly))
	if snap.Custom != nil {
		fmt.Fprintf(&b, "- **Selected range:** %s\n", totalsLine(*snap.Custom))
	}
	fmt.Fprintf(&b, "- **Current streak:** %s\n", Days(snap.CurrentStreak))
	fmt.Fprintf(&b, "- **Longest streak:** %s\n", Days(snap.LongestStreak))
	fmt.Fprintf(&b, "- **Average time to complete:** %s\n", FormatDuration(snap.AvgCompletion))
	fmt.Fprintf(&b, "- **Most productive hour:** %s\n\n", FormatHour(snap.MostProductiveHour))

	if len(report.Days) > 0 {
		b.WriteString("## Daily breakdown\n\n")
		b.WriteString("| Date | Day | Done | Total | % |\n")
		b.WriteString("|------|-----|------|-------|---|\n")
		for _, d := range report.Days {
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %d%% |\n", d.DateKey, d.DayOfWeek, d.Completed, d.Total, d.Percent)
		}
		b.WriteString("\n")
	}

	if len(report.Tasks) > 0 {
		b.WriteString("## Tasks\n\n")
		current := ""
		for _, t := range report.Tasks {
			if t.DateKey != current {
				if current != "" {
					b.WriteString("\n")
				}
				current = t.DateKey
				fmt.Fprintf(&b, "### %s\n\n", current)
			}
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, t.Name)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n*Generated %s*\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

func totalsLine(t Totals) string {
	return fmt.Sprintf("%d/%d completed (%d%%)", t.Completed, t.Total, t.Percent)
}

// Days renders a day count with the right plural.
func Days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatDuration renders a duration as "1h 05m" or "42m".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	mins := int(d.Round(time.Minute).Minutes())
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}

// FormatHour renders an hour of day as "9 AM"; -1 renders as "n/a".
func FormatHour(h int) string {
	if h < 0 || h > 23 {
		return "n/a"
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d %s", h12, suffix)
}
