package capture

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagecal-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.PageSource = (*Fetcher)(nil)

// Default fetch configuration.
const (
	DefaultTimeout = 30 * time.Second

	// maxBodySize bounds how much of a document is read. Pages past
	// this point cannot contribute visible text anyway given the
	// snapshot cap.
	maxBodySize = 5 << 20

	maxRedirects = 10

	userAgent = "Mozilla/5.0 (compatible; pagecal/1.0; +https://github.com/custodia-labs/pagecal-cli)"
)

// Fetcher is the HTTP implementation of driven.PageSource.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a page fetcher with sane transport defaults.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

// NewFetcherWithClient creates a fetcher using the given client.
// Useful for tests with httptest servers.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Capture fetches the page and builds its snapshot.
// Transport failures and non-2xx statuses wrap domain.ErrPageUnreachable.
func (f *Fetcher) Capture(ctx context.Context, url string) (*domain.PageSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageUnreachable, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: server returned %s", domain.ErrPageUnreachable, resp.Status)
	}

	snapshot, err := Snapshot(io.LimitReader(resp.Body, maxBodySize), url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageUnreachable, err)
	}

	logger.Debug("captured %s: %d chars visible text, %d event hints",
		url, len(snapshot.VisibleText), len(snapshot.EventSchemaHints))

	return snapshot, nil
}
