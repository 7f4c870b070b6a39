package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestEventRecord_Normalise(t *testing.T) {
	tests := []struct {
		name      string
		event     EventRecord
		wantTitle string
	}{
		{
			name:      "missing title gets placeholder",
			event:     EventRecord{},
			wantTitle: UntitledEvent,
		},
		{
			name:      "whitespace title gets placeholder",
			event:     EventRecord{Title: "   "},
			wantTitle: UntitledEvent,
		},
		{
			name:      "present title is kept",
			event:     EventRecord{Title: "Go Meetup"},
			wantTitle: "Go Meetup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.Normalise()
			assert.Equal(t, tt.wantTitle, got.Title)
		})
	}
}

func TestEventRecord_Normalise_DoesNotTouchOtherFields(t *testing.T) {
	event := EventRecord{
		Description:   "desc",
		Location:      "loc",
		StartDateTime: strPtr("2024-05-01T10:00:00"),
		AllDay:        true,
	}

	got := event.Normalise()

	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, "loc", got.Location)
	assert.Equal(t, "2024-05-01T10:00:00", *got.StartDateTime)
	assert.Nil(t, got.EndDateTime)
	assert.True(t, got.AllDay)
}

func TestEventRecord_End_FallsBackToStart(t *testing.T) {
	event := EventRecord{StartDateTime: strPtr("2024-05-01T10:00:00")}

	assert.Equal(t, "2024-05-01T10:00:00", event.End())
}

func TestEventRecord_End_UsesEndWhenPresent(t *testing.T) {
	event := EventRecord{
		StartDateTime: strPtr("2024-05-01T10:00:00"),
		EndDateTime:   strPtr("2024-05-01T12:00:00"),
	}

	assert.Equal(t, "2024-05-01T12:00:00", event.End())
}

func TestEventRecord_End_EmptyWhenBothAbsent(t *testing.T) {
	assert.Equal(t, "", EventRecord{}.End())
}
