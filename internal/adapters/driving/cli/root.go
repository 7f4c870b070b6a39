// Package cli implements the pagecal command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pagecal-cli/internal/core/services"
	"github.com/custodia-labs/pagecal-cli/internal/logger"
)

// version is set by SetVersion before Execute.
var version = "dev"

// Services wired by main before Execute.
var (
	extractionService driving.ExtractionService
	submissionService driving.SubmissionService
	settingsService   driving.SettingsService
	sessionStore      *services.Session
	tokenProvider     *auth.GoogleTokenProvider
)

// Services bundles everything the commands need.
type Services struct {
	Extraction    driving.ExtractionService
	Submission    driving.SubmissionService
	Settings      driving.SettingsService
	Session       *services.Session
	TokenProvider *auth.GoogleTokenProvider
}

// SetServices wires the application services into the command tree.
func SetServices(s *Services) {
	extractionService = s.Extraction
	submissionService = s.Submission
	settingsService = s.Settings
	sessionStore = s.Session
	tokenProvider = s.TokenProvider
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pagecal",
	Short: "Extract events from web pages into Google Calendar",
	Long: `PageCal captures a web page, extracts structured event records from it
with the Anthropic API, lets you review and edit the results, and inserts
chosen events into your Google Calendar.

Start with:
  pagecal settings set-key     store your Anthropic API key
  pagecal auth login           connect your Google Calendar
  pagecal review <url>         extract and review events interactively`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
