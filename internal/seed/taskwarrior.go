package seed

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"tasktrack/internal/tasks"
)

// Taskwarrior seeds from a `task export` dump (JSON array or NDJSON).
// Each task lands on its due date, or on its entry date when undated.
type Taskwarrior struct {
	Path string

	skipped int
}

// taskwarriorTask represents a task in Taskwarrior's JSON format.
type taskwarriorTask struct {
	Description string `json:"description"`
	Status      string `json:"status"`
	Due         string `json:"due"`
	Entry       string `json:"entry"`
	End         string `json:"end"`
	UUID        string `json:"uuid"`
}

// Name returns the strategy name.
func (t *Taskwarrior) Name() string { return "taskwarrior" }

// Seed reads the export file into store.
func (t *Taskwarrior) Seed(store *tasks.Store) (*Result, error) {
	t.skipped = 0
	result, err := seedFromFile(t.Path, t, store)
	if err != nil {
		return nil, err
	}
	result.Skipped += t.skipped
	return result, nil
}

// Parse reads Taskwarrior JSON. Deleted, blank and undated tasks are skipped.
func (t *Taskwarrior) Parse(reader io.Reader) ([]Entry, error) {
	br := bufio.NewReader(reader)
	prefix, first, err := readFirstNonSpaceByte(br)
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty input")
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	r := io.MultiReader(bytes.NewReader(prefix), br)
	var raw []taskwarriorTask
	if first == '[' {
		raw, err = parseTaskwarriorJSONArray(r)
	} else {
		raw, err = parseTaskwarriorNDJSON(r)
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, tw := range raw {
		e, ok := entryFromTaskwarrior(tw)
		if !ok {
			t.skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

const maxTaskwarriorNDJSONLineBytes = 4 << 20 // 4MiB

func readFirstNonSpaceByte(r *bufio.Reader) ([]byte, byte, error) {
	var prefix []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(prefix) == 0 {
				return nil, 0, io.EOF
			}
			return prefix, 0, err
		}
		prefix = append(prefix, b)
		if !isSpaceByte(b) {
			return prefix, b, nil
		}
	}
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func parseTaskwarriorJSONArray(r io.Reader) ([]taskwarriorTask, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON array: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("failed to parse JSON array: expected '['")
	}

	var out []taskwarriorTask
	var idx int
	for dec.More() {
		idx++
		var tw taskwarriorTask
		if err := dec.Decode(&tw); err != nil {
			return nil, fmt.Errorf("failed to decode task %d: %w", idx, err)
		}
		out = append(out, tw)
	}

	// Consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse JSON array: %w", err)
	}

	return out, nil
}

func parseTaskwarriorNDJSON(r io.Reader) ([]taskwarriorTask, error) {
	br := bufio.NewReader(r)
	var out []taskwarriorTask
	var lineNo int
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > maxTaskwarriorNDJSONLineBytes {
			return nil, fmt.Errorf("taskwarrior NDJSON line %d exceeds %d bytes", lineNo+1, maxTaskwarriorNDJSONLineBytes)
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read NDJSON: %w", err)
		}
		if len(line) == 0 && err == io.EOF {
			break
		}

		lineNo++
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if err == io.EOF {
				break
			}
			continue
		}

		var tw taskwarriorTask
		if uerr := json.Unmarshal(line, &tw); uerr != nil {
			return nil, fmt.Errorf("invalid JSON on line %d: %w", lineNo, uerr)
		}
		out = append(out, tw)

		if err == io.EOF {
			break
		}
	}

	if lineNo == 0 {
		return nil, fmt.Errorf("empty input")
	}

	return out, nil
}

func entryFromTaskwarrior(tw taskwarriorTask) (Entry, bool) {
	if tw.Status == "deleted" {
		return Entry{}, false
	}
	name := strings.TrimSpace(tw.Description)
	if name == "" {
		return Entry{}, false
	}

	due := parseTaskwarriorDate(tw.Due)
	entry := parseTaskwarriorDate(tw.Entry)
	key, ok := dayOf(due, entry)
	if !ok {
		return Entry{}, false
	}

	e := Entry{DateKey: key, Name: name, Completed: tw.Status == "completed"}
	if entry != nil {
		e.CreatedAt = *entry
	}
	if e.Completed {
		if end := parseTaskwarriorDate(tw.End); end != nil {
			e.CompletedAt = end
		}
	}
	return e, true
}

// parseTaskwarriorDate parses Taskwarrior's date format.
// Format: 20140928T211124Z (ISO 8601 basic format)
func parseTaskwarriorDate(dateStr string) *time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil
	}

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			localTime := t.Local()
			return &localTime
		}
	}

	return nil
}
