package driving

import (
	"context"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// SubmissionService commits a reviewed event to the external calendar.
type SubmissionService interface {
	// Submit inserts one event and returns the committed entry.
	// Failure kinds: domain.ErrAuthFailed, *domain.UpstreamError.
	Submit(ctx context.Context, event domain.EventRecord) (*domain.CalendarEntry, error)
}
