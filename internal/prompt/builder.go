// Package prompt builds the extraction request sent to the model.
package prompt

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// VisibleTextLimit caps how much page text is embedded in a prompt.
// This is independent of the capture-stage cap, which only bounds the
// snapshot itself.
const VisibleTextLimit = 15000

const header = `You are an AI assistant that extracts event information from web pages.
Analyze the following web page content and extract all event information you can find.

For each event, extract:
- title: The event name/title
- description: A brief description of the event
- location: Where the event takes place (physical address or virtual link)
- startDateTime: Start date and time in ISO 8601 format (YYYY-MM-DDTHH:mm:ss)
- endDateTime: End date and time in ISO 8601 format (YYYY-MM-DDTHH:mm:ss)
- allDay: Boolean indicating if it's an all-day event

If you cannot determine exact dates/times, make reasonable inferences or leave them as null.`

const footer = `Respond with a JSON array of events. Each event should have this structure:
{
  "title": "string",
  "description": "string",
  "location": "string",
  "startDateTime": "ISO 8601 string or null",
  "endDateTime": "ISO 8601 string or null",
  "allDay": boolean
}

If no events are found, return an empty array: []

IMPORTANT: Respond with ONLY the JSON array, no additional text or explanation.`

// Build produces the extraction request text for a snapshot.
// Pure function: deterministic for identical input, no side effects.
func Build(snapshot *domain.PageSnapshot) string {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n\nPage Title: ")
	b.WriteString(snapshot.Title)
	b.WriteString("\nPage URL: ")
	b.WriteString(snapshot.URL)
	b.WriteString("\n\n")

	if hints := renderHints(snapshot.EventSchemaHints); hints != "" {
		b.WriteString("Event Schema Data:\n")
		b.WriteString(hints)
		b.WriteString("\n\n")
	}

	b.WriteString("Visible Text Content:\n")
	b.WriteString(capText(snapshot.VisibleText, VisibleTextLimit))
	b.WriteString("\n\n")
	b.WriteString(footer)

	return b.String()
}

// renderHints serialises the JSON-LD fragments as one indented array.
// Returns "" when there are no hints, so the section is omitted entirely.
func renderHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}

	raws := make([]json.RawMessage, len(hints))
	for i, h := range hints {
		raws[i] = json.RawMessage(h)
	}

	out, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		// Hints were validated at capture time; an encode failure here
		// only costs the enrichment, not the extraction.
		return ""
	}
	return string(out)
}

// capText truncates text to at most limit bytes without splitting a rune.
func capText(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}
