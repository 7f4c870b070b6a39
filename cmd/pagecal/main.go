// Command pagecal extracts events from web pages and inserts them into
// Google Calendar.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/calendar/google"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/pagecal-cli/internal/capture"
	"github.com/custodia-labs/pagecal-cli/internal/core/services"
	"github.com/custodia-labs/pagecal-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	cfg, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	tokenStore, err := file.NewTokenStore("")
	if err != nil {
		return fmt.Errorf("open token store: %w", err)
	}
	oauthConf := auth.NewOAuthConfig(cfg.Calendar.ClientID, cfg.Calendar.ClientSecret, "")
	tokenProvider := auth.NewGoogleTokenProvider(oauthConf, tokenStore)

	// The model client resolves its key per request, so a key stored
	// through the settings panel works without a restart.
	llm := anthropic.NewDynamicLLMService(func() (anthropic.Config, error) {
		current, err := settingsService.Get()
		if err != nil {
			return anthropic.Config{}, err
		}
		return anthropic.Config{
			APIKey: current.Anthropic.APIKey,
			Model:  current.Anthropic.Model,
		}, nil
	})
	defer llm.Close() //nolint:errcheck // nothing to handle on close

	session := services.NewSession()
	extractionService := services.NewExtractionService(capture.NewFetcher(), llm, settingsService, session)

	// Calendar construction is lazy; auth errors surface on the first
	// insert, not here.
	submissionService := services.NewSubmissionService(nil)
	calendarClient, err := google.NewClient(context.Background(), tokenProvider, cfg.Calendar.TimeZone)
	if err != nil {
		logger.Debug("calendar client unavailable: %v", err)
	} else {
		submissionService = services.NewSubmissionService(calendarClient)
	}

	cli.SetServices(&cli.Services{
		Extraction:    extractionService,
		Submission:    submissionService,
		Settings:      settingsService,
		Session:       session,
		TokenProvider: tokenProvider,
	})
	cli.SetVersion(version)

	return cli.Execute()
}
