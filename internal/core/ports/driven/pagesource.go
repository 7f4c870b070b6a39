package driven

import (
	"context"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// PageSource captures the content of a live web page.
//
// The orchestrator validates the address scheme before calling Capture;
// implementations only see http and https URLs.
type PageSource interface {
	// Capture fetches the page and returns its snapshot.
	// An unreachable page yields an error wrapping domain.ErrPageUnreachable.
	Capture(ctx context.Context, url string) (*domain.PageSnapshot, error)
}
