package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/oauth"
)

var (
	addIndex int
	addOpen  bool
)

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Extract events and add them to Google Calendar",
	Long: `Extract events from the page and insert them into your primary
Google Calendar. Requires 'pagecal auth login' to have been run.

By default every extracted event is inserted; use --index to pick a
single one (numbering matches 'pagecal extract' output).

Examples:
  pagecal add https://example.com/whats-on
  pagecal add https://example.com/whats-on --index 2 --open`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addIndex, "index", 0, "insert only the event at this position (1-based)")
	addCmd.Flags().BoolVar(&addOpen, "open", false, "open each created entry in the browser")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if extractionService == nil || submissionService == nil {
		return errors.New("services not configured")
	}
	if tokenProvider != nil && !tokenProvider.IsAuthenticated() {
		return errors.New("not connected to Google Calendar; run 'pagecal auth login' first")
	}

	events, err := extractionService.Extract(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(events) == 0 {
		cmd.Println("No events found on this page.")
		return nil
	}

	if addIndex != 0 {
		if addIndex < 1 || addIndex > len(events) {
			return fmt.Errorf("index %d out of range (page has %d events)", addIndex, len(events))
		}
		events = events[addIndex-1 : addIndex]
	}

	for _, event := range events {
		entry, err := submissionService.Submit(cmd.Context(), event)
		if err != nil {
			return fmt.Errorf("add %q: %w", event.Title, err)
		}
		cmd.Printf("Added %q\n", entry.Summary)
		if entry.HTMLLink != "" {
			cmd.Printf("  %s\n", entry.HTMLLink)
			if addOpen {
				// Best effort; the link is already printed.
				_ = oauth.OpenBrowser(entry.HTMLLink)
			}
		}
	}
	return nil
}
