package google

import (
	"strings"

	"google.golang.org/api/calendar/v3"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// toCalendarEvent converts an event record to the API request format.
//
// All-day events carry the date portion of their timestamps only; timed
// events send the full timestamp with the configured zone. An event with
// no start at all is sent without an interval, which the API stores as
// an unscheduled draft on some calendars and rejects on others; that
// outcome is surfaced to the user as-is.
func toCalendarEvent(event domain.EventRecord, timeZone string) *calendar.Event {
	out := &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
	}

	if event.AllDay {
		start := datePortion(event.Start())
		end := datePortion(event.End())
		if start != "" {
			if end == "" {
				end = start
			}
			out.Start = &calendar.EventDateTime{Date: start}
			out.End = &calendar.EventDateTime{Date: end}
		}
		return out
	}

	if event.Start() != "" {
		out.Start = &calendar.EventDateTime{
			DateTime: event.Start(),
			TimeZone: timeZone,
		}
		out.End = &calendar.EventDateTime{
			DateTime: event.End(),
			TimeZone: timeZone,
		}
	}

	return out
}

// datePortion strips the time-of-day from an ISO 8601 timestamp.
func datePortion(timestamp string) string {
	if timestamp == "" {
		return ""
	}
	date, _, _ := strings.Cut(timestamp, "T")
	return date
}
