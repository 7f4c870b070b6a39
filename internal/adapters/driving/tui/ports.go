// Package tui provides the interactive review terminal UI for pagecal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pagecal-cli/internal/core/services"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extraction runs the page-to-events pipeline.
	Extraction driving.ExtractionService

	// Submission commits reviewed events to the calendar.
	Submission driving.SubmissionService

	// Settings manages application settings.
	Settings driving.SettingsService

	// Session holds the events of the current extraction cycle.
	Session *services.Session
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	if p.Submission == nil {
		return ErrMissingSubmissionService
	}
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
