package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
)

// CalendarScope is the narrowest scope that allows event creation.
const CalendarScope = "https://www.googleapis.com/auth/calendar.events"

// Ensure GoogleTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*GoogleTokenProvider)(nil)

// TokenStore persists OAuth tokens between runs.
type TokenStore interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
	Clear() error
}

// NewOAuthConfig builds the oauth2 config for the Google consent flow.
func NewOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{CalendarScope},
		Endpoint:     google.Endpoint,
	}
}

// GoogleTokenProvider provides Google access tokens with automatic refresh.
// The stored refresh token is exchanged for a fresh access token when the
// cached one is near expiry, and the rotated token is written back to the
// store so the next run starts warm.
type GoogleTokenProvider struct {
	conf  *oauth2.Config
	store TokenStore

	mu            sync.Mutex
	cached        *oauth2.Token
	refreshBuffer time.Duration
}

// NewGoogleTokenProvider creates a token provider over a persisted token.
func NewGoogleTokenProvider(conf *oauth2.Config, store TokenStore) *GoogleTokenProvider {
	return &GoogleTokenProvider{
		conf:          conf,
		store:         store,
		refreshBuffer: 5 * time.Minute,
	}
}

// GetToken returns a valid access token, refreshing if necessary.
func (p *GoogleTokenProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil && p.fresh(p.cached) {
		return p.cached.AccessToken, nil
	}

	token, err := p.store.Load()
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if token == nil {
		return "", fmt.Errorf("%w: run 'pagecal auth' first", domain.ErrAuthFailed)
	}

	if !p.fresh(token) {
		if token.RefreshToken == "" {
			return "", fmt.Errorf("%w: token expired and no refresh token stored", domain.ErrAuthFailed)
		}
		refreshed, err := p.conf.TokenSource(ctx, token).Token()
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
		}
		// Google rotates the refresh token only sometimes; keep the old
		// one when the response omits it.
		if refreshed.RefreshToken == "" {
			refreshed.RefreshToken = token.RefreshToken
		}
		if err := p.store.Save(refreshed); err != nil {
			return "", fmt.Errorf("save refreshed token: %w", err)
		}
		token = refreshed
	}

	p.cached = token
	return token.AccessToken, nil
}

// fresh reports whether the token is usable without a refresh round-trip.
func (p *GoogleTokenProvider) fresh(token *oauth2.Token) bool {
	if token.AccessToken == "" {
		return false
	}
	if token.Expiry.IsZero() {
		return true
	}
	return time.Until(token.Expiry) > p.refreshBuffer
}

// IsAuthenticated returns true if a stored token can produce access
// tokens without user interaction.
func (p *GoogleTokenProvider) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil && p.fresh(p.cached) {
		return true
	}

	token, err := p.store.Load()
	if err != nil || token == nil {
		return false
	}
	return p.fresh(token) || token.RefreshToken != ""
}

// StoreToken persists a token obtained from the interactive consent flow.
func (p *GoogleTokenProvider) StoreToken(token *oauth2.Token) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Save(token); err != nil {
		return err
	}
	p.cached = token
	return nil
}

// SignOut removes the persisted token and clears the cache.
func (p *GoogleTokenProvider) SignOut() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cached = nil
	return p.store.Clear()
}
