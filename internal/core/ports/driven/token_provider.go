package driven

import "context"

// TokenProvider provides bearer access tokens for the calendar API.
// Implementations handle refresh transparently and may trigger an
// interactive consent flow on first use.
type TokenProvider interface {
	// GetToken returns a valid access token, refreshing if expired.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if valid authentication is available
	// without user interaction.
	IsAuthenticated() bool
}
