package services

import (
	"context"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pagecal-cli/internal/logger"
)

// Ensure SubmissionService implements the driving port.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// SubmissionService commits reviewed events to the external calendar.
// The date/time mapping lives in the calendar adapter; this service
// only guards the boundary and logs the outcome.
type SubmissionService struct {
	calendar driven.CalendarService
}

// NewSubmissionService creates a submission service.
func NewSubmissionService(calendar driven.CalendarService) *SubmissionService {
	return &SubmissionService{calendar: calendar}
}

// Submit inserts one event and returns the committed entry.
func (s *SubmissionService) Submit(ctx context.Context, event domain.EventRecord) (*domain.CalendarEntry, error) {
	if s.calendar == nil {
		return nil, domain.ErrAuthFailed
	}

	entry, err := s.calendar.Insert(ctx, event.Normalise())
	if err != nil {
		return nil, err
	}

	logger.Info("created calendar entry %s (%s)", entry.ID, entry.Summary)
	return entry, nil
}
