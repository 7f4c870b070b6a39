package driven

import (
	"context"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// CalendarService inserts events into the user's external calendar.
type CalendarService interface {
	// Insert creates the event on the user's primary calendar and
	// returns the committed entry. An absent or rejected credential
	// yields an error wrapping domain.ErrAuthFailed; a non-success
	// upstream response yields a *domain.UpstreamError.
	Insert(ctx context.Context, event domain.EventRecord) (*domain.CalendarEntry, error)
}
