package driving

import (
	"context"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// ExtractionService runs the page-to-events pipeline.
// It is the sole writer of the session's event list.
type ExtractionService interface {
	// Extract runs one extraction cycle against the given address:
	// scheme validation, credential check, page capture, prompt build,
	// model call, response parse. On success the session events are
	// replaced wholesale and returned in source order.
	//
	// Failure kinds: domain.ErrUnsupportedPage, domain.ErrMissingCredential,
	// domain.ErrPageUnreachable, domain.ErrMalformedResponse,
	// domain.ErrUnexpectedShape, *domain.UpstreamError.
	Extract(ctx context.Context, url string) ([]domain.EventRecord, error)
}
