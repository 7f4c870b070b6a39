// Package flow models the review screen as an explicit state machine,
// decoupled from rendering. Views consult the machine to decide what to
// draw; key handlers drive it through the transition methods.
package flow

import (
	"fmt"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/services"
)

// State identifies where the review flow currently is.
type State int

const (
	// Idle is the initial state before any extraction.
	Idle State = iota
	// Loading means an extraction cycle is in flight.
	Loading
	// NoEvents means the last cycle succeeded with an empty list.
	NoEvents
	// ErrorShown means the last cycle failed and the error is displayed.
	ErrorShown
	// ListView means extracted events are listed for review.
	ListView
	// EditingItem means one event card is open in the editor.
	EditingItem
	// ConfigPanel means the settings panel is open.
	ConfigPanel
)

// String returns the state name for logging and tests.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case NoEvents:
		return "no_events"
	case ErrorShown:
		return "error_shown"
	case ListView:
		return "list_view"
	case EditingItem:
		return "editing_item"
	case ConfigPanel:
		return "config_panel"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a transition is requested from a
// state that does not allow it.
var ErrInvalidTransition = fmt.Errorf("flow: invalid transition")

// Machine is the review-flow state machine. It owns the screen state
// and writes edits through the session so the event list and the state
// cannot disagree. Machine is not safe for concurrent use; the
// Bubbletea update loop is its only caller.
type Machine struct {
	state   State
	session *services.Session
	err     error
}

// NewMachine creates a machine in the Idle state backed by the given
// session store.
func NewMachine(session *services.Session) *Machine {
	return &Machine{state: Idle, session: session}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Err returns the failure shown in the ErrorShown state, or nil.
func (m *Machine) Err() error {
	return m.err
}

// Extract begins an extraction cycle. Allowed from Idle, NoEvents,
// ErrorShown and ListView; a second extract while one is in flight is
// rejected so one trigger produces one cycle.
func (m *Machine) Extract() error {
	switch m.state {
	case Idle, NoEvents, ErrorShown, ListView:
		m.state = Loading
		m.err = nil
		return nil
	default:
		return fmt.Errorf("%w: extract from %s", ErrInvalidTransition, m.state)
	}
}

// Complete records the outcome of the in-flight cycle. A nil error with
// an empty list lands in NoEvents, a non-empty list in ListView, and a
// failure in ErrorShown. The session is replaced only on success.
//
// A completion arriving when the machine has already left Loading (the
// user opened the settings panel mid-flight) still updates the session,
// last write wins, but leaves the screen state alone.
func (m *Machine) Complete(events []domain.EventRecord, err error) error {
	if m.state != Loading {
		if err == nil {
			m.session.Replace(events)
		}
		return nil
	}
	if err != nil {
		m.state = ErrorShown
		m.err = err
		m.session.Clear()
		return nil
	}
	m.session.Replace(events)
	if len(events) == 0 {
		m.state = NoEvents
	} else {
		m.state = ListView
	}
	return nil
}

// Edit opens the editor on the event at index. Only one card can be
// open at a time; the session enforces the same invariant.
func (m *Machine) Edit(index int) (domain.EventRecord, error) {
	if m.state != ListView {
		return domain.EventRecord{}, fmt.Errorf("%w: edit from %s", ErrInvalidTransition, m.state)
	}
	record, err := m.session.BeginEdit(index)
	if err != nil {
		return domain.EventRecord{}, err
	}
	m.state = EditingItem
	return record, nil
}

// Save writes the updated record into the open slot and returns to the
// list.
func (m *Machine) Save(updated domain.EventRecord) error {
	if m.state != EditingItem {
		return fmt.Errorf("%w: save from %s", ErrInvalidTransition, m.state)
	}
	if err := m.session.SaveEdit(updated); err != nil {
		return err
	}
	m.state = ListView
	return nil
}

// Cancel discards the open edit and returns to the list.
func (m *Machine) Cancel() error {
	if m.state != EditingItem {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, m.state)
	}
	m.session.CancelEdit()
	m.state = ListView
	return nil
}

// OpenSettings opens the settings panel. Allowed from any state; an
// open edit is discarded first so no editing slot is left dangling.
func (m *Machine) OpenSettings() error {
	if m.state == ConfigPanel {
		return fmt.Errorf("%w: open settings from %s", ErrInvalidTransition, m.state)
	}
	if m.state == EditingItem {
		m.session.CancelEdit()
	}
	m.state = ConfigPanel
	return nil
}

// CloseSettings leaves the panel, whether saved or cancelled, and
// returns to Idle. The caller decides whether to start a fresh cycle.
func (m *Machine) CloseSettings() error {
	if m.state != ConfigPanel {
		return fmt.Errorf("%w: close settings from %s", ErrInvalidTransition, m.state)
	}
	m.state = Idle
	return nil
}
