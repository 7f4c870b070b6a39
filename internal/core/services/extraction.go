package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pagecal-cli/internal/logger"
	"github.com/custodia-labs/pagecal-cli/internal/parse"
	"github.com/custodia-labs/pagecal-cli/internal/prompt"
)

// Ensure ExtractionService implements the driving port.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService sequences one extraction cycle:
// scheme validation, credential check, page capture, prompt build,
// model call, response parse, session write. It is the sole writer of
// the session's event list.
//
// No retries happen here; a failed cycle is terminal and retry is a
// fresh user-triggered invocation.
type ExtractionService struct {
	pages    driven.PageSource
	llm      driven.LLMService
	settings driving.SettingsService
	session  *Session
}

// NewExtractionService wires the extraction pipeline.
func NewExtractionService(
	pages driven.PageSource,
	llm driven.LLMService,
	settings driving.SettingsService,
	session *Session,
) *ExtractionService {
	return &ExtractionService{
		pages:    pages,
		llm:      llm,
		settings: settings,
		session:  session,
	}
}

// Extract runs one extraction cycle against the given address.
func (s *ExtractionService) Extract(ctx context.Context, pageURL string) ([]domain.EventRecord, error) {
	cycleID := uuid.New().String()
	logger.Section("Extraction " + cycleID)

	if err := validateScheme(pageURL); err != nil {
		return nil, err
	}

	// The credential is checked before any network activity so a
	// misconfigured run fails instantly instead of after a page fetch.
	cfg, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !cfg.Anthropic.IsConfigured() {
		return nil, domain.ErrMissingCredential
	}

	s.session.Clear()

	snapshot, err := s.pages.Capture(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("capture page (try reloading it): %w", err)
	}
	logger.Debug("snapshot: title=%q, %d chars", snapshot.Title, len(snapshot.VisibleText))

	request := prompt.Build(snapshot)
	logger.Debug("prompt: %d chars", len(request))

	raw, err := s.llm.Generate(ctx, request, driven.GenerateOptions{
		MaxTokens: cfg.Anthropic.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	events, err := parse.Events(raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed %d events", len(events))

	s.session.Replace(events)
	return s.session.Events(), nil
}

// validateScheme rejects addresses the tool cannot capture before any
// work happens. Only ordinary web addresses are supported.
func validateScheme(pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnsupportedPage, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q is not a web page", domain.ErrUnsupportedPage, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", domain.ErrUnsupportedPage)
	}
	return nil
}
