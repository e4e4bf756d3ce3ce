package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"tasktrack/internal/tasks"
)

// Todoist seeds from a Todoist CSV template export. Rows land on their
// DATE column; undated rows go to the seeding day.
type Todoist struct {
	Path string
	Now  func() time.Time
}

// Name returns the strategy name.
func (t *Todoist) Name() string { return "todoist" }

// Seed reads the CSV file into store.
func (t *Todoist) Seed(store *tasks.Store) (*Result, error) {
	return seedFromFile(t.Path, t, store)
}

// Parse reads the Todoist CSV format. Non-task rows are dropped.
func (t *Todoist) Parse(reader io.Reader) ([]Entry, error) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	today := now()

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff") // UTF-8 BOM (common in some exports)
		}
		colIndex[strings.ToUpper(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"TYPE", "CONTENT"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	var entries []Entry
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		typeIdx := colIndex["TYPE"]
		if typeIdx >= len(record) || strings.ToLower(record[typeIdx]) != "task" {
			continue
		}

		var name string
		if idx := colIndex["CONTENT"]; idx < len(record) {
			name = strings.TrimSpace(record[idx])
		}
		if name == "" {
			continue
		}

		var due *time.Time
		if idx, ok := colIndex["DATE"]; ok && idx < len(record) {
			due = parseTodoistDate(record[idx])
		}
		key, _ := dayOf(due, &today)

		entries = append(entries, Entry{DateKey: key, Name: name, CreatedAt: today})
	}

	return entries, nil
}

// parseTodoistDate parses various Todoist date formats.
func parseTodoistDate(dateStr string) *time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil
	}

	formats := []string{
		"2006-01-02",
		"Jan 2 2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"01/02/2006",
		"02/01/2006",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return &t
		}
	}

	return nil
}
