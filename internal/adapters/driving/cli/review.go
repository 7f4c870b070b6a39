package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review <url>",
	Short: "Extract events and review them interactively",
	Long: `Launch the interactive terminal UI: extract events from the page,
review and edit them, and add the ones you want to Google Calendar.

Controls:
  ↑/k, ↓/j - Navigate events
  e        - Edit selected event
  a        - Add selected event to Google Calendar
  r        - Re-extract from the page
  s        - Settings panel
  Esc      - Back / Cancel
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if extractionService == nil || sessionStore == nil {
		return errors.New("services not configured")
	}

	// Panic recovery keeps the stack trace visible once the alternate
	// screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app := tui.NewApp(&tui.Ports{
		Extraction: extractionService,
		Submission: submissionService,
		Settings:   settingsService,
		Session:    sessionStore,
	}, args[0])
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
