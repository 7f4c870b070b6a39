package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract events from a web page",
	Long: `Fetch the page at the given address and extract structured event
records from its visible content.

Examples:
  pagecal extract https://example.com/whats-on
  pagecal extract https://example.com/whats-on --json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print events as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	events, err := extractionService.Extract(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if extractJSON {
		out, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return fmt.Errorf("encode events: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	if len(events) == 0 {
		cmd.Println("No events found on this page.")
		return nil
	}

	cmd.Printf("Found %d event(s):\n\n", len(events))
	for i, event := range events {
		printEvent(cmd, i, event)
	}
	cmd.Println("Add one with: pagecal add <url> --index <n>")
	return nil
}

func printEvent(cmd *cobra.Command, index int, event domain.EventRecord) {
	cmd.Printf("  %d. %s\n", index+1, event.Title)
	if event.Start() != "" {
		if event.AllDay {
			cmd.Printf("     When: %s (all day)\n", event.Start())
		} else {
			cmd.Printf("     When: %s - %s\n", event.Start(), event.End())
		}
	}
	if event.Location != "" {
		cmd.Printf("     Where: %s\n", event.Location)
	}
	if event.Description != "" {
		cmd.Printf("     %s\n", event.Description)
	}
	cmd.Println()
}
