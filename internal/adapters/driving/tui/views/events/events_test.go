package events

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

func strptr(s string) *string { return &s }

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleEvents() []domain.EventRecord {
	return []domain.EventRecord{
		{Title: "Concert", StartDateTime: strptr("2024-05-01T19:00:00"), Location: "Town Hall"},
		{Title: "Workshop", Description: "Hands-on session"},
		{Title: "Fair", StartDateTime: strptr("2024-06-01T00:00:00"), AllDay: true},
	}
}

func TestView_Navigation(t *testing.T) {
	v := NewView(nil)
	v.SetEvents(sampleEvents())

	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 2, v.Selected(), "cursor stops at the last card")

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 1, v.Selected())
}

func TestView_SetEventsClampsCursor(t *testing.T) {
	v := NewView(nil)
	v.SetEvents(sampleEvents())
	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))

	v.SetEvents([]domain.EventRecord{{Title: "Only"}})
	assert.Equal(t, 0, v.Selected())
}

func TestView_SelectedEvent(t *testing.T) {
	v := NewView(nil)

	_, ok := v.SelectedEvent()
	assert.False(t, ok)

	v.SetEvents(sampleEvents())
	event, ok := v.SelectedEvent()
	require.True(t, ok)
	assert.Equal(t, "Concert", event.Title)
}

func TestView_RendersCards(t *testing.T) {
	v := NewView(nil)
	v.SetEvents(sampleEvents())

	out := v.View()
	assert.Contains(t, out, "Concert")
	assert.Contains(t, out, "Where: Town Hall")
	assert.Contains(t, out, "Workshop")
	assert.Contains(t, out, "Hands-on session")
	assert.Contains(t, out, "(all day)")
}

func TestView_EmptyList(t *testing.T) {
	v := NewView(nil)
	assert.Contains(t, v.View(), "No events.")
}

func TestFormatWhen(t *testing.T) {
	tests := []struct {
		name     string
		event    domain.EventRecord
		expected string
	}{
		{
			name:     "No start",
			event:    domain.EventRecord{},
			expected: "(no date)",
		},
		{
			name:     "Timed without end",
			event:    domain.EventRecord{StartDateTime: strptr("2024-05-01T19:00:00")},
			expected: "2024-05-01T19:00:00",
		},
		{
			name: "Timed with end",
			event: domain.EventRecord{
				StartDateTime: strptr("2024-05-01T19:00:00"),
				EndDateTime:   strptr("2024-05-01T21:00:00"),
			},
			expected: "2024-05-01T19:00:00 - 2024-05-01T21:00:00",
		},
		{
			name:     "All day single date",
			event:    domain.EventRecord{StartDateTime: strptr("2024-05-01T00:00:00"), AllDay: true},
			expected: "2024-05-01 (all day)",
		},
		{
			name: "All day multi date",
			event: domain.EventRecord{
				StartDateTime: strptr("2024-05-01T00:00:00"),
				EndDateTime:   strptr("2024-05-03T00:00:00"),
				AllDay:        true,
			},
			expected: "2024-05-01 - 2024-05-03 (all day)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatWhen(tt.event))
		})
	}
}
