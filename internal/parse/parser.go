// Package parse turns raw model output into normalised event records.
//
// Model output is unstructured by nature: the JSON array may arrive bare
// or wrapped in a fenced code block, and individual records may omit any
// field. The parser is deliberately tolerant at the field level and
// strict at the shape level.
package parse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// fencedBlock matches the first fenced code block, optionally tagged "json".
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// Events parses raw model output into an ordered slice of event records.
//
// The input is trimmed, unwrapped from a fenced code block when present,
// and parsed as JSON. Invalid JSON yields domain.ErrMalformedResponse;
// valid JSON that is not an array yields domain.ErrUnexpectedShape.
// Output order equals input order; no deduplication.
func Events(raw string) ([]domain.EventRecord, error) {
	text := strings.TrimSpace(raw)

	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	elements, ok := parsed.([]any)
	if !ok {
		return nil, domain.ErrUnexpectedShape
	}

	events := make([]domain.EventRecord, 0, len(elements))
	for _, el := range elements {
		events = append(events, eventFromValue(el))
	}
	return events, nil
}

// eventFromValue maps one array element to a record, applying the
// field-level defaults. Non-object elements and wrong-typed fields fall
// back to defaults rather than failing the whole response.
func eventFromValue(v any) domain.EventRecord {
	obj, ok := v.(map[string]any)
	if !ok {
		return domain.EventRecord{}.Normalise()
	}

	event := domain.EventRecord{
		Title:         stringField(obj, "title"),
		Description:   stringField(obj, "description"),
		Location:      stringField(obj, "location"),
		StartDateTime: timestampField(obj, "startDateTime"),
		EndDateTime:   timestampField(obj, "endDateTime"),
		AllDay:        boolField(obj, "allDay"),
	}
	return event.Normalise()
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// timestampField returns nil for absent, null, empty, or non-string
// values. A malformed date string is passed through unchanged.
func timestampField(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func boolField(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}
