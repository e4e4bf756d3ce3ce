package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tasktrack/internal/stats"
	"tasktrack/internal/tasks"

	"github.com/fatih/color"
)

// execute runs the root command with args against an isolated config home.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// isolate points the config lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

// writeFixture stores two tasks for today (one done) and one finished task
// for yesterday.
func writeFixture(t *testing.T) string {
	t.Helper()
	now := time.Now()
	todayKey := tasks.DateKey(now)
	yesterdayKey := tasks.DateKey(now.AddDate(0, 0, -1))

	doc := fmt.Sprintf(`{
  "tasks": {
    %q: [
      {"name": "Write report", "completed": true},
      {"name": "Water plants"}
    ],
    %q: [
      {"name": "Pay rent", "completed": true}
    ]
  }
}`, todayKey, yesterdayKey)

	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// =============================================================================
// stats
// =============================================================================

func TestStats_JSON(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)

	out, _, err := execute(t, "stats", "--json", "--seed", "fixture", "--seed-file", fixture)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	var snap stats.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not a snapshot: %v\n%s", err, out)
	}
	if snap.Today.Completed != 1 || snap.Today.Total != 2 || snap.Today.Percent != 50 {
		t.Errorf("today = %+v, want 1/2 (50%%)", snap.Today)
	}
	if snap.Weekly.Total != 3 || snap.Weekly.Completed != 2 {
		t.Errorf("weekly = %+v, want 2/3", snap.Weekly)
	}
	if snap.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1 (yesterday only)", snap.CurrentStreak)
	}
	if snap.Custom != nil {
		t.Error("custom totals should be omitted without --from/--to")
	}
}

func TestStats_Table(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)

	out, _, err := execute(t, "stats", "--seed", "fixture", "--seed-file", fixture)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{"Statistics as of", "Today", "50%", "Last 7 days", "67%", "Current streak:", "1 day"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStats_CustomWindow(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)
	key := tasks.DateKey(time.Now())

	out, _, err := execute(t, "stats", "--json", "--from", key, "--to", key, "--seed", "fixture", "--seed-file", fixture)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	var snap stats.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Custom == nil || snap.Custom.Total != 2 {
		t.Errorf("custom = %+v, want total 2", snap.Custom)
	}
}

func TestStats_BadWindow(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"from only", []string{"--from", "2024-05-01"}},
		{"reversed", []string{"--from", "2024-05-10", "--to", "2024-05-01"}},
		{"malformed", []string{"--from", "May 1", "--to", "2024-05-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"stats", "--seed", "none"}, tt.args...)
			if _, _, err := execute(t, args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// =============================================================================
// calendar
// =============================================================================

func TestCalendar_Month(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "calendar", "--month", "2024-02", "--seed", "none")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if !strings.Contains(out, "February 2024") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "Su  Mo  Tu") {
		t.Errorf("weeks should start on Sunday by default:\n%s", out)
	}
	if !strings.Contains(out, "29") {
		t.Errorf("leap day missing:\n%s", out)
	}
	// Feb 1 2024 is a Thursday: four blank columns before it.
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("too few lines:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", 16)+" 1") {
		t.Errorf("first week misaligned: %q", lines[2])
	}
}

func TestCalendar_Monday(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "calendar", "--month", "2024-02", "--monday", "--seed", "none")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if !strings.Contains(out, "Mo  Tu  We  Th  Fr  Sa  Su") {
		t.Errorf("weeks should start on Monday:\n%s", out)
	}
}

func TestCalendar_Markers(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)

	out, _, err := execute(t, "calendar", "--seed", "fixture", "--seed-file", fixture)
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	day := time.Now().Day()
	if !strings.Contains(out, fmt.Sprintf("%2d•", day)) {
		t.Errorf("today should carry the open-tasks marker:\n%s", out)
	}
	if day > 1 && !strings.Contains(out, fmt.Sprintf("%2d✓", day-1)) {
		t.Errorf("yesterday should carry the completed marker:\n%s", out)
	}
}

func TestCalendar_BadMonth(t *testing.T) {
	isolate(t)
	if _, _, err := execute(t, "calendar", "--month", "2024/02", "--seed", "none"); err == nil {
		t.Error("expected an error for a malformed month")
	}
}

// =============================================================================
// export
// =============================================================================

func TestExport_MarkdownStdout(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)

	out, _, err := execute(t, "export", "--seed", "fixture", "--seed-file", fixture)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	for _, want := range []string{"# Task report:", "## Summary", "Write report", "Pay rent"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestExport_JSONFile(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)
	dest := filepath.Join(t.TempDir(), "nested", "report.json")

	out, _, err := execute(t, "export", "-f", "json", "-o", dest, "--seed", "fixture", "--seed-file", fixture)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Report written to "+dest) {
		t.Errorf("unexpected output: %q", out)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var report stats.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(report.Tasks) != 3 {
		t.Errorf("report has %d tasks, want 3", len(report.Tasks))
	}
	if len(report.Days) != 7 {
		t.Errorf("report has %d days, want the 7-day default window", len(report.Days))
	}
}

func TestExport_FixtureRoundTrip(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)
	dest := filepath.Join(t.TempDir(), "roundtrip.json")

	if _, _, err := execute(t, "export", "-f", "fixture", "-o", dest, "--seed", "fixture", "--seed-file", fixture); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out, _, err := execute(t, "stats", "--json", "--seed", "fixture", "--seed-file", dest)
	if err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	var snap stats.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Today.Total != 2 || snap.Today.Completed != 1 {
		t.Errorf("today after round trip = %+v, want 1/2", snap.Today)
	}
}

func TestExport_InvalidFormat(t *testing.T) {
	isolate(t)
	if _, _, err := execute(t, "export", "-f", "csv", "--seed", "none"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

// =============================================================================
// config
// =============================================================================

func TestConfig_InitPathShow(t *testing.T) {
	dir := isolate(t)
	want := filepath.Join(dir, "tasktrack", "config.yaml")

	out, _, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if strings.TrimSpace(out) != want {
		t.Errorf("path = %q, want %q", strings.TrimSpace(out), want)
	}

	if _, _, err := execute(t, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if _, _, err := execute(t, "config", "init"); err == nil {
		t.Error("second init should refuse to overwrite")
	}
	out, _, err = execute(t, "config", "init", "--force")
	if err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	if !strings.Contains(out, "Previous config saved to "+want+".bak") {
		t.Errorf("force should back up the old file, got %q", out)
	}
	if _, err := os.Stat(want + ".bak"); err != nil {
		t.Errorf("backup missing: %v", err)
	}

	out, _, err = execute(t, "config", "show", "--seed", "none")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"strategy: none", "notification_time:", "show_sunday: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("show missing %q:\n%s", want, out)
		}
	}
}

func TestConfig_InvalidFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("settings:\n  notification_time: \"25:00\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "stats", "--config", path, "--seed", "none"); err == nil {
		t.Error("expected invalid settings to fail the load")
	}
}

// =============================================================================
// remind
// =============================================================================

func TestRemind_Disabled(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "settings:\n  notifications_enabled: false\n"
	if err := os.WriteFile(path, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "remind", "--once", "--config", path, "--seed", "none")
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Errorf("err = %v, want notifications disabled", err)
	}
}

func TestRemind_OnceNotDue(t *testing.T) {
	isolate(t)
	fixture := writeFixture(t)

	// Pick a reminder time one hour away so the check cannot match.
	at := time.Now().Add(time.Hour)
	h := at.Hour() % 12
	if h == 0 {
		h = 12
	}
	ampm := "AM"
	if at.Hour() >= 12 {
		ampm = "PM"
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := fmt.Sprintf("settings:\n  notification_time: \"%d:%02d\"\n  am_pm: %s\nux:\n  desktop_notifications: false\n", h, at.Minute(), ampm)
	if err := os.WriteFile(path, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "remind", "--once", "--config", path, "--seed", "fixture", "--seed-file", fixture)
	if err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if out != "" {
		t.Errorf("reminder should not fire, got %q", out)
	}
}

// =============================================================================
// version
// =============================================================================

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "dev") {
		t.Errorf("version output = %q, want the dev build", out)
	}
}

func TestVersion_BadOutput(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "version", "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "invalid output") {
		t.Fatalf("version -o xml error = %v, want invalid output", err)
	}
	if _, _, err := execute(t, "version", "-o", "YAML"); err != nil {
		t.Errorf("version -o YAML failed: %v", err)
	}
}
