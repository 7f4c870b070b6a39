package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

func sampleEvents() []domain.EventRecord {
	start := "2024-05-01T10:00:00"
	return []domain.EventRecord{
		{Title: "Standup", StartDateTime: &start},
		{Title: "Planning"},
		{Title: "Retro", Location: "Room 4"},
	}
}

func TestSession_ReplaceAndEvents(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())

	assert.Equal(t, 3, session.Len())

	events := session.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "Standup", events[0].Title)
	assert.Equal(t, "Retro", events[2].Title)

	// Mutating the returned slice must not touch session state.
	events[0].Title = "changed"
	got, err := session.Event(0)
	require.NoError(t, err)
	assert.Equal(t, "Standup", got.Title)
}

func TestSession_ReplaceClearsEditCursor(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())

	_, err := session.BeginEdit(1)
	require.NoError(t, err)

	session.Replace(sampleEvents())

	_, open := session.EditingIndex()
	assert.False(t, open)
}

func TestSession_EventOutOfRange(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())

	_, err := session.Event(3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = session.Event(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSession_CancelEditLeavesRecordUntouched(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())

	before, err := session.Event(2)
	require.NoError(t, err)

	_, err = session.BeginEdit(2)
	require.NoError(t, err)

	session.CancelEdit()

	after, err := session.Event(2)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, open := session.EditingIndex()
	assert.False(t, open)
}

func TestSession_SaveEditAppliesTitlePlaceholder(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())

	_, err := session.BeginEdit(1)
	require.NoError(t, err)

	require.NoError(t, session.SaveEdit(domain.EventRecord{Title: "   "}))

	got, err := session.Event(1)
	require.NoError(t, err)
	assert.Equal(t, domain.UntitledEvent, got.Title)

	_, open := session.EditingIndex()
	assert.False(t, open)
}

func TestSession_SaveEditWithoutOpenEdit(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())

	err := session.SaveEdit(domain.EventRecord{Title: "Orphan"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSession_SecondConcurrentEditRejected(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())

	_, err := session.BeginEdit(0)
	require.NoError(t, err)

	_, err = session.BeginEdit(2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Re-entering the same edit is allowed.
	_, err = session.BeginEdit(0)
	assert.NoError(t, err)
}

func TestSession_Clear(t *testing.T) {
	session := NewSession()
	session.Replace(sampleEvents())
	_, err := session.BeginEdit(1)
	require.NoError(t, err)

	session.Clear()

	assert.Equal(t, 0, session.Len())
	_, open := session.EditingIndex()
	assert.False(t, open)
}
