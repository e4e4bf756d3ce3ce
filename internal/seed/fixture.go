package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"tasktrack/internal/tasks"
)

//go:embed fixture.schema.json
var fixtureSchemaJSON []byte

const fixtureSchemaURL = "tasktrack://fixture.schema.json"

var (
	fixtureSchemaOnce sync.Once
	fixtureSchema     *jsonschema.Schema
	fixtureSchemaErr  error
)

func compiledFixtureSchema() (*jsonschema.Schema, error) {
	fixtureSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(fixtureSchemaURL, bytes.NewReader(fixtureSchemaJSON)); err != nil {
			fixtureSchemaErr = fmt.Errorf("load fixture schema: %w", err)
			return
		}
		fixtureSchema, fixtureSchemaErr = compiler.Compile(fixtureSchemaURL)
	})
	return fixtureSchema, fixtureSchemaErr
}

// fixtureDoc is the on-disk fixture layout: tasks grouped by YYYY-MM-DD.
type fixtureDoc struct {
	Tasks map[string][]fixtureTask `json:"tasks"`
}

type fixtureTask struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Fixture loads a JSON document of date-keyed tasks after validating it
// against the embedded schema.
type Fixture struct {
	Path string
}

// Name returns the strategy name.
func (f *Fixture) Name() string { return "fixture" }

// Seed reads the fixture file into store.
func (f *Fixture) Seed(store *tasks.Store) (*Result, error) {
	return seedFromFile(f.Path, f, store)
}

// Parse validates and decodes a fixture document.
func (f *Fixture) Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledFixtureSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(raw); err != nil {
		return nil, schemaError(err)
	}

	var doc fixtureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	keys := make([]string, 0, len(doc.Tasks))
	for k := range doc.Tasks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var entries []Entry
	for _, key := range keys {
		day, ok := tasks.ParseDateKey(key)
		if !ok {
			return nil, fmt.Errorf("invalid date key %q", key)
		}
		for idx, ft := range doc.Tasks[key] {
			e := Entry{
				DateKey:   key,
				Name:      strings.TrimSpace(ft.Name),
				Completed: ft.Completed,
				CreatedAt: day.Add(time.Duration(idx) * time.Second),
			}
			if ft.CreatedAt != nil {
				e.CreatedAt = ft.CreatedAt.Local()
			}
			if ft.Completed {
				done := e.CreatedAt
				if ft.CompletedAt != nil {
					done = ft.CompletedAt.Local()
				}
				e.CompletedAt = &done
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// schemaError flattens a jsonschema validation tree into one error listing
// every leaf failure with its instance location.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("fixture does not match schema: %w", err)
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	return fmt.Errorf("fixture does not match schema: %s", strings.Join(msgs, "; "))
}

func collectSchemaErrors(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, msgs)
	}
}

// EncodeFixture renders buckets in the fixture layout so an exported
// session can be fed back through the fixture strategy.
func EncodeFixture(buckets map[string][]tasks.Task) ([]byte, error) {
	doc := fixtureDoc{Tasks: make(map[string][]fixtureTask, len(buckets))}
	for key, bucket := range buckets {
		list := make([]fixtureTask, 0, len(bucket))
		for _, t := range bucket {
			created := t.CreatedAt
			list = append(list, fixtureTask{
				Name:        t.Name,
				Completed:   t.Completed,
				CreatedAt:   &created,
				CompletedAt: t.CompletedAt,
			})
		}
		doc.Tasks[key] = list
	}
	return json.MarshalIndent(doc, "", "  ")
}
