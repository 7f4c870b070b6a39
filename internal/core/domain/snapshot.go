package domain

// VisibleTextCap is the maximum number of characters of visible text
// retained in a snapshot. Text past the cap is dropped and the
// truncation marker appended.
const VisibleTextCap = 100000

// TruncationMarker is appended to visible text that exceeded the cap.
const TruncationMarker = "... [truncated]"

// PageSnapshot is the captured content of a single web page.
// It is created once per extraction cycle and never mutated.
type PageSnapshot struct {
	// Title is the document title.
	Title string

	// URL is the address the page was captured from.
	URL string

	// VisibleText is the whitespace-normalised page text, capped at
	// VisibleTextCap characters with TruncationMarker appended when
	// the cap was exceeded.
	VisibleText string

	// Meta holds the recognised meta tags.
	Meta MetaInfo

	// EventSchemaHints are raw JSON-LD fragments whose declared type
	// is "Event". Best-effort enrichment; may be empty.
	EventSchemaHints []string
}

// MetaInfo holds the recognised subset of page meta tags.
// Unrecognised names are discarded at capture time.
type MetaInfo struct {
	Description   string
	Keywords      string
	Author        string
	OGTitle       string
	OGDescription string
}

// Truncated reports whether the visible text hit the capture cap.
func (s *PageSnapshot) Truncated() bool {
	return len(s.VisibleText) > VisibleTextCap
}
