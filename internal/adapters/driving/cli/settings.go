package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Anthropic API key, model, time zone, and the
Google OAuth client.

Settings live in ~/.pagecal/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the Anthropic API key",
	Long: `Store the Anthropic API key used for extraction. The key is read
without echo and must begin with "` + domain.APIKeyPrefix + `".`,
	RunE: runSettingsSetKey,
}

var settingsModelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "Set the extraction model",
	Long: `Set the Anthropic model used for extraction. With no argument the
default (` + domain.DefaultModel + `) is restored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsModel,
}

var settingsTimeZoneCmd = &cobra.Command{
	Use:   "timezone [zone]",
	Short: "Set the calendar time zone",
	Long: `Set the IANA time zone attached to timed calendar events, e.g.
Europe/London. With no argument the calendar's own default zone applies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsTimeZone,
}

var settingsGoogleCmd = &cobra.Command{
	Use:   "google",
	Short: "Configure the Google OAuth client",
	Long: `Store the OAuth client used for the Google Calendar consent flow.

Create a "Desktop app" OAuth client in the Google Cloud console with the
Calendar API enabled, then enter its credentials here.`,
	RunE: runSettingsGoogle,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	settingsCmd.AddCommand(settingsModelCmd)
	settingsCmd.AddCommand(settingsTimeZoneCmd)
	settingsCmd.AddCommand(settingsGoogleCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Anthropic]")
	if settings.Anthropic.APIKey != "" {
		cmd.Printf("  API Key: %s\n", domain.MaskAPIKey(settings.Anthropic.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Model: %s\n", settings.Anthropic.Model)
	cmd.Printf("  Max Tokens: %d\n", settings.Anthropic.MaxTokens)
	cmd.Println()

	cmd.Println("[Calendar]")
	if settings.Calendar.TimeZone != "" {
		cmd.Printf("  Time Zone: %s\n", settings.Calendar.TimeZone)
	} else {
		cmd.Printf("  Time Zone: (calendar default)\n")
	}
	if settings.Calendar.ClientID != "" {
		cmd.Printf("  Google Client: %s\n", truncate(settings.Calendar.ClientID, 20))
	} else {
		cmd.Printf("  Google Client: (not set)\n")
	}
	if tokenProvider != nil && tokenProvider.IsAuthenticated() {
		cmd.Printf("  Connection: connected\n")
	} else {
		cmd.Printf("  Connection: not connected\n")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSetKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter Anthropic API key: ")
	key := readPassword()
	cmd.Println()

	if err := settingsService.SetAPIKey(key); err != nil {
		return err
	}

	cmd.Printf("API key stored (%s).\n", domain.MaskAPIKey(strings.TrimSpace(key)))
	return nil
}

func runSettingsModel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	model := ""
	if len(args) == 1 {
		model = args[0]
	}
	if err := settingsService.SetModel(model); err != nil {
		return err
	}

	if model == "" {
		cmd.Printf("Model reset to default (%s).\n", domain.DefaultModel)
	} else {
		cmd.Printf("Model set to %s.\n", model)
	}
	return nil
}

func runSettingsTimeZone(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	zone := ""
	if len(args) == 1 {
		zone = args[0]
	}
	if err := settingsService.SetTimeZone(zone); err != nil {
		return err
	}

	if zone == "" {
		cmd.Println("Time zone cleared; the calendar's default zone applies.")
	} else {
		cmd.Printf("Time zone set to %s.\n", zone)
	}
	return nil
}

func runSettingsGoogle(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Print("Client ID: ")
	clientID := readLine(reader)

	cmd.Print("Client Secret: ")
	clientSecret := readPassword()
	cmd.Println()

	if err := settingsService.SetGoogleClient(clientID, clientSecret); err != nil {
		return err
	}

	cmd.Println("Google OAuth client stored. Run 'pagecal auth login' to connect.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// truncate truncates a string to the specified length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
