package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagecal-cli/internal/logger"
)

// primaryCalendar is the target calendar for all insertions.
const primaryCalendar = "primary"

// Ensure Client implements the CalendarService port.
var _ driven.CalendarService = (*Client)(nil)

// Client inserts events into the user's primary Google calendar.
type Client struct {
	svc      *calendar.Service
	limiter  *RateLimiter
	timeZone string
}

// NewClient creates a calendar client backed by the given token provider.
// timeZone is the IANA zone attached to timed events; when empty the
// calendar's own default zone applies.
func NewClient(ctx context.Context, provider driven.TokenProvider, timeZone string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(NewTokenSource(ctx, provider)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &Client{
		svc:      svc,
		limiter:  NewRateLimiter(),
		timeZone: timeZone,
	}, nil
}

// Insert creates the event on the primary calendar.
func (c *Client) Insert(ctx context.Context, event domain.EventRecord) (*domain.CalendarEntry, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	created, err := c.svc.Events.Insert(primaryCalendar, toCalendarEvent(event, c.timeZone)).Context(ctx).Do()
	if err != nil {
		return nil, c.wrapError(err)
	}

	logger.Debug("calendar insert: id=%s link=%s", created.Id, created.HtmlLink)
	return &domain.CalendarEntry{
		ID:       created.Id,
		HTMLLink: created.HtmlLink,
		Summary:  created.Summary,
	}, nil
}

// wrapError maps API failures onto the domain error taxonomy.
func (c *Client) wrapError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return &domain.UpstreamError{Service: "google-calendar", Message: err.Error()}
	}

	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrAuthFailed, gerr.Message)
	case http.StatusTooManyRequests:
		c.limiter.RecordRateLimitError(0)
		return &domain.UpstreamError{Service: "google-calendar", Message: "rate limit exceeded"}
	default:
		msg := gerr.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", gerr.Code)
		}
		return &domain.UpstreamError{Service: "google-calendar", Message: msg}
	}
}
