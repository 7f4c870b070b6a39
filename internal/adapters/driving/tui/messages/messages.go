// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEvents is the extracted event list.
	ViewEvents ViewType = iota
	// ViewEditor is the single-card edit form.
	ViewEditor
	// ViewSettings is the settings panel.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEvents:
		return "events"
	case ViewEditor:
		return "editor"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ExtractionCompleted carries the result of an extraction cycle.
type ExtractionCompleted struct {
	Events []domain.EventRecord
	Err    error
}

// EventSubmitted carries the result of one calendar insertion.
type EventSubmitted struct {
	Index int
	Entry *domain.CalendarEntry
	Err   error
}

// EditRequested is sent when an event card is opened for editing.
type EditRequested struct {
	Index  int
	Record domain.EventRecord
}

// EditClosed is sent when the editor is left, saved or not.
type EditClosed struct {
	Saved bool
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// StatusExpired clears a transient status banner.
type StatusExpired struct {
	ID int
}
