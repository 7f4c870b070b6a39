// Package events provides the extracted event list view for the TUI.
// Events render as cards; one card is highlighted and drives the edit
// and add actions.
package events

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// View is the event list view.
type View struct {
	styles *styles.Styles

	events   []domain.EventRecord
	selected int

	width  int
	height int
}

// NewView creates a new event list view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// SetEvents replaces the listed events and clamps the cursor.
func (v *View) SetEvents(events []domain.EventRecord) {
	v.events = events
	if v.selected >= len(events) {
		v.selected = 0
	}
}

// Selected returns the index of the highlighted card.
func (v *View) Selected() int {
	return v.selected
}

// SelectedEvent returns the highlighted record.
func (v *View) SelectedEvent() (domain.EventRecord, bool) {
	if v.selected < 0 || v.selected >= len(v.events) {
		return domain.EventRecord{}, false
	}
	return v.events[v.selected], true
}

// Update handles messages for the event list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.events)-1 {
				v.selected++
			}
		}
	}

	return v, nil
}

// View renders the event cards.
func (v *View) View() string {
	if len(v.events) == 0 {
		return v.styles.Muted.Render("No events.")
	}

	var b strings.Builder
	for i, event := range v.events {
		card := v.renderCard(event)
		if i == v.selected {
			b.WriteString(v.styles.SelectedCard.Render(card))
		} else {
			b.WriteString(v.styles.Card.Render(card))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderCard(event domain.EventRecord) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(event.Title))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("When: " + FormatWhen(event)))

	if event.Location != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render("Where: " + event.Location))
	}
	if event.Description != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(event.Description))
	}

	return b.String()
}

// FormatWhen renders an event's interval for display. All-day events
// show the date portion only; timed events show the end when it differs
// from the start.
func FormatWhen(event domain.EventRecord) string {
	start := event.Start()
	if start == "" {
		return "(no date)"
	}

	if event.AllDay {
		day, _, _ := strings.Cut(start, "T")
		end := event.End()
		endDay, _, _ := strings.Cut(end, "T")
		if endDay != "" && endDay != day {
			return fmt.Sprintf("%s - %s (all day)", day, endDay)
		}
		return day + " (all day)"
	}

	end := event.End()
	if end != start {
		return start + " - " + end
	}
	return start
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
