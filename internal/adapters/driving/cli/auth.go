package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/oauth"
)

// consentTimeout bounds how long the login command waits for the user to
// finish the browser consent flow.
const consentTimeout = 5 * time.Minute

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Google Calendar connection",
	Long: `Connect, inspect, and disconnect the Google Calendar integration.

The login flow opens your browser for Google consent and receives the
authorization code on a local callback server. You need an OAuth client
of your own (a "Desktop app" client in the Google Cloud console);
configure it once with 'pagecal settings google'.

Examples:
  pagecal auth login
  pagecal auth status
  pagecal auth logout`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Connect your Google Calendar",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Google Calendar connection status",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Disconnect and forget the stored Google token",
	RunE:  runAuthLogout,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

//nolint:errcheck // browser open is best-effort, URL is printed as fallback
func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || tokenProvider == nil {
		return errors.New("auth services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if settings.Calendar.ClientID == "" || settings.Calendar.ClientSecret == "" {
		return errors.New("no Google OAuth client configured; run 'pagecal settings google' first")
	}

	state := oauth.GenerateState()
	server := oauth.NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop() //nolint:errcheck // shutdown on exit path

	conf := auth.NewOAuthConfig(settings.Calendar.ClientID, settings.Calendar.ClientSecret, server.RedirectURI())

	verifier := oauth.GenerateCodeVerifier()
	authURL := conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("code_challenge", oauth.GenerateCodeChallenge(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	cmd.Println("Opening your browser for Google consent...")
	cmd.Printf("If it does not open, visit:\n  %s\n\n", authURL)
	_ = oauth.OpenBrowser(authURL)

	code, err := server.WaitForCode(consentTimeout)
	if err != nil {
		return fmt.Errorf("authorization: %w", err)
	}

	token, err := conf.Exchange(cmd.Context(), code,
		oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := tokenProvider.StoreToken(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	cmd.Println("Connected to Google Calendar.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if tokenProvider == nil {
		return errors.New("auth services not configured")
	}

	if tokenProvider.IsAuthenticated() {
		cmd.Println("Connected to Google Calendar.")
	} else {
		cmd.Println("Not connected. Run 'pagecal auth login'.")
	}
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if tokenProvider == nil {
		return errors.New("auth services not configured")
	}

	if err := tokenProvider.SignOut(); err != nil {
		return fmt.Errorf("remove stored token: %w", err)
	}
	cmd.Println("Disconnected from Google Calendar.")
	return nil
}
