package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driving"
)

// Configuration keys.
const (
	keyAnthropicAPIKey    = "anthropic.api_key"
	keyAnthropicModel     = "anthropic.model"
	keyAnthropicMaxTokens = "anthropic.max_tokens"
	keyCalendarTimeZone   = "calendar.timezone"
	keyGoogleClientID     = "google.client_id"
	keyGoogleClientSecret = "google.client_secret"
)

// Ensure SettingsService implements the driving port.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService provides typed access to application settings over
// the ConfigStore.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns current settings with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	settings.Anthropic.APIKey = s.store.GetString(keyAnthropicAPIKey)
	if model := s.store.GetString(keyAnthropicModel); model != "" {
		settings.Anthropic.Model = model
	}
	if maxTokens := s.store.GetInt(keyAnthropicMaxTokens); maxTokens > 0 {
		settings.Anthropic.MaxTokens = maxTokens
	}
	settings.Calendar.TimeZone = s.store.GetString(keyCalendarTimeZone)
	settings.Calendar.ClientID = s.store.GetString(keyGoogleClientID)
	settings.Calendar.ClientSecret = s.store.GetString(keyGoogleClientSecret)

	return settings, nil
}

// SetAPIKey validates and stores the Anthropic API key.
func (s *SettingsService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if err := domain.ValidateAPIKey(key); err != nil {
		return err
	}
	return s.store.Set(keyAnthropicAPIKey, key)
}

// SetModel stores the model identifier. An empty model resets to the default.
func (s *SettingsService) SetModel(model string) error {
	return s.store.Set(keyAnthropicModel, strings.TrimSpace(model))
}

// SetTimeZone stores the IANA zone identifier for timed events.
func (s *SettingsService) SetTimeZone(zone string) error {
	return s.store.Set(keyCalendarTimeZone, strings.TrimSpace(zone))
}

// SetGoogleClient stores the OAuth client for the calendar consent flow.
func (s *SettingsService) SetGoogleClient(clientID, clientSecret string) error {
	clientID = strings.TrimSpace(clientID)
	clientSecret = strings.TrimSpace(clientSecret)
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("%w: client ID and secret are both required", domain.ErrInvalidInput)
	}
	if err := s.store.Set(keyGoogleClientID, clientID); err != nil {
		return err
	}
	return s.store.Set(keyGoogleClientSecret, clientSecret)
}

// Validate checks the configuration is usable for extraction.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if !settings.Anthropic.IsConfigured() {
		return fmt.Errorf("%w: run 'pagecal settings set-key'", domain.ErrMissingCredential)
	}
	return nil
}
