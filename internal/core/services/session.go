package services

import (
	"fmt"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// Session holds the event list and edit cursor for one run of the tool.
// It is constructed explicitly and injected into the orchestrator and
// the UI layer; there is no process-wide singleton.
//
// The session lives for the lifetime of the process and is discarded on
// exit. Events are never persisted.
type Session struct {
	events       []domain.EventRecord
	editingIndex int // -1 when no event is being edited
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{editingIndex: -1}
}

// Replace swaps in a new event list wholesale and clears the edit cursor.
// Only the extraction service calls this.
func (s *Session) Replace(events []domain.EventRecord) {
	s.events = make([]domain.EventRecord, len(events))
	copy(s.events, events)
	s.editingIndex = -1
}

// Clear empties the session at the start of a new extraction cycle.
func (s *Session) Clear() {
	s.events = nil
	s.editingIndex = -1
}

// Events returns a copy of the current event list in extraction order.
func (s *Session) Events() []domain.EventRecord {
	out := make([]domain.EventRecord, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of events.
func (s *Session) Len() int {
	return len(s.events)
}

// Event returns the event at index.
func (s *Session) Event(index int) (domain.EventRecord, error) {
	if index < 0 || index >= len(s.events) {
		return domain.EventRecord{}, fmt.Errorf("%w: event index %d out of range", domain.ErrInvalidInput, index)
	}
	return s.events[index], nil
}

// BeginEdit marks the event at index as being edited and returns it.
// At most one event is editable at a time; beginning a new edit while
// another is open is rejected.
func (s *Session) BeginEdit(index int) (domain.EventRecord, error) {
	if s.editingIndex >= 0 && s.editingIndex != index {
		return domain.EventRecord{}, fmt.Errorf("%w: event %d is already being edited", domain.ErrInvalidInput, s.editingIndex)
	}
	event, err := s.Event(index)
	if err != nil {
		return domain.EventRecord{}, err
	}
	s.editingIndex = index
	return event, nil
}

// SaveEdit writes the updated record over the event being edited and
// clears the edit cursor. The title placeholder rule is re-applied so a
// user cannot save an event into a nameless state.
func (s *Session) SaveEdit(updated domain.EventRecord) error {
	if s.editingIndex < 0 {
		return fmt.Errorf("%w: no event is being edited", domain.ErrInvalidInput)
	}
	s.events[s.editingIndex] = updated.Normalise()
	s.editingIndex = -1
	return nil
}

// CancelEdit discards the in-progress edit and clears the edit cursor.
// The stored record is untouched.
func (s *Session) CancelEdit() {
	s.editingIndex = -1
}

// EditingIndex returns the index being edited and whether one is open.
func (s *Session) EditingIndex() (int, bool) {
	if s.editingIndex < 0 {
		return 0, false
	}
	return s.editingIndex, true
}
