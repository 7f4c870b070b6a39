package domain

import "strings"

// APIKeyPrefix is the fixed literal every Anthropic API key begins with.
// Keys without the prefix are rejected before being stored.
const APIKeyPrefix = "sk-ant-"

// Default model configuration.
const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultMaxTokens is the token budget for an extraction request.
	DefaultMaxTokens = 4096
)

// AppSettings holds the application configuration.
type AppSettings struct {
	// Anthropic configures the language model service.
	Anthropic AnthropicSettings

	// Calendar configures calendar submission.
	Calendar CalendarSettings
}

// AnthropicSettings configures the language model service.
type AnthropicSettings struct {
	// APIKey is the Anthropic API key. Empty until configured.
	APIKey string

	// Model is the model identifier.
	Model string

	// MaxTokens is the per-request token budget.
	MaxTokens int
}

// CalendarSettings configures calendar submission.
type CalendarSettings struct {
	// TimeZone is an IANA zone identifier applied to timed events.
	// Empty defers to the calendar's own default zone.
	TimeZone string

	// ClientID is the OAuth client ID for the identity provider.
	ClientID string

	// ClientSecret is the OAuth client secret.
	ClientSecret string
}

// IsConfigured returns true when an API key is present.
func (s AnthropicSettings) IsConfigured() bool {
	return s.APIKey != ""
}

// ValidateAPIKey checks that a key has the required Anthropic prefix.
func ValidateAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrMissingCredential
	}
	if !strings.HasPrefix(key, APIKeyPrefix) {
		return ErrInvalidAPIKey
	}
	return nil
}

// MaskAPIKey renders a key safe for display.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// DefaultAppSettings returns settings with model defaults applied.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Anthropic: AnthropicSettings{
			Model:     DefaultModel,
			MaxTokens: DefaultMaxTokens,
		},
	}
}
