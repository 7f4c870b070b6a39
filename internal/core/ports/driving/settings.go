package driving

import "github.com/custodia-labs/pagecal-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns current settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// SetAPIKey validates and stores the Anthropic API key.
	// Keys must begin with domain.APIKeyPrefix.
	SetAPIKey(key string) error

	// SetModel stores the model identifier. Empty resets to the default.
	SetModel(model string) error

	// SetTimeZone stores the IANA zone for timed events.
	// Empty defers to the calendar's own default zone.
	SetTimeZone(zone string) error

	// SetGoogleClient stores the OAuth client used for the calendar
	// consent flow.
	SetGoogleClient(clientID, clientSecret string) error

	// Validate checks the configuration is usable for extraction.
	Validate() error
}
