package domain

import "strings"

// UntitledEvent is the placeholder title applied when the source omits one.
const UntitledEvent = "Untitled Event"

// EventRecord is a structured event extracted from a page.
// Records are immutable between edits; the session replaces a record
// wholesale when an edit is saved.
type EventRecord struct {
	// Title is the event name. Never empty after normalisation.
	Title string `json:"title"`

	// Description is a brief description of the event.
	Description string `json:"description"`

	// Location is a physical address or virtual link.
	Location string `json:"location"`

	// StartDateTime is an ISO 8601 timestamp, or nil when unknown.
	// A malformed value is passed through unchanged; rendering is
	// responsible for degrading gracefully.
	StartDateTime *string `json:"startDateTime"`

	// EndDateTime is an ISO 8601 timestamp, or nil when unknown.
	// Consumers needing a closed interval treat an absent end as equal
	// to the start.
	EndDateTime *string `json:"endDateTime"`

	// AllDay marks a date-only event. When true, the time-of-day
	// portion of the timestamps is ignored downstream.
	AllDay bool `json:"allDay"`
}

// Normalise applies field-level defaults to a record decoded from an
// untrusted source. Missing or whitespace-only titles become the
// placeholder; nil string pointers stay nil.
func (e EventRecord) Normalise() EventRecord {
	if strings.TrimSpace(e.Title) == "" {
		e.Title = UntitledEvent
	}
	return e
}

// Start returns the start timestamp, or "" when absent.
func (e EventRecord) Start() string {
	if e.StartDateTime == nil {
		return ""
	}
	return *e.StartDateTime
}

// End returns the end timestamp, falling back to the start so callers
// always see a closed interval. Returns "" when both are absent.
func (e EventRecord) End() string {
	if e.EndDateTime != nil {
		return *e.EndDateTime
	}
	return e.Start()
}

// CalendarEntry is the committed result of a calendar insertion.
type CalendarEntry struct {
	// ID is the identifier assigned by the calendar service.
	ID string

	// HTMLLink is a browsable link to the created entry.
	HTMLLink string

	// Summary is the title echoed back by the calendar service.
	Summary string
}
