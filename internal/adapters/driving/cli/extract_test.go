package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/services"
)

type fakeExtraction struct {
	events  []domain.EventRecord
	err     error
	lastURL string
}

func (f *fakeExtraction) Extract(_ context.Context, url string) ([]domain.EventRecord, error) {
	f.lastURL = url
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeSubmission struct {
	entries []domain.CalendarEntry
	err     error
}

func (f *fakeSubmission) Submit(_ context.Context, event domain.EventRecord) (*domain.CalendarEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	entry := domain.CalendarEntry{ID: "id-" + event.Title, HTMLLink: "https://cal/" + event.Title, Summary: event.Title}
	f.entries = append(f.entries, entry)
	return &entry, nil
}

// wireFakes installs fake services and returns a restore function.
func wireFakes(extraction *fakeExtraction, submission *fakeSubmission) func() {
	prevExtraction := extractionService
	prevSubmission := submissionService
	prevSettings := settingsService
	prevSession := sessionStore
	prevToken := tokenProvider

	extractionService = extraction
	submissionService = submission
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	sessionStore = services.NewSession()
	tokenProvider = nil

	return func() {
		extractionService = prevExtraction
		submissionService = prevSubmission
		settingsService = prevSettings
		sessionStore = prevSession
		tokenProvider = prevToken
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestExtractCmd_ListOutput(t *testing.T) {
	start := "2024-05-01T19:00:00"
	restore := wireFakes(&fakeExtraction{events: []domain.EventRecord{
		{Title: "Concert", StartDateTime: &start, Location: "Town Hall"},
		{Title: "Workshop"},
	}}, &fakeSubmission{})
	defer restore()

	out, err := executeCommand(t, "extract", "https://example.com/events")
	require.NoError(t, err)

	assert.Contains(t, out, "Found 2 event(s)")
	assert.Contains(t, out, "1. Concert")
	assert.Contains(t, out, "Where: Town Hall")
	assert.Contains(t, out, "2. Workshop")
}

func TestExtractCmd_JSONOutput(t *testing.T) {
	restore := wireFakes(&fakeExtraction{events: []domain.EventRecord{{Title: "Concert"}}}, &fakeSubmission{})
	defer restore()
	defer func() { extractJSON = false }()

	out, err := executeCommand(t, "extract", "https://example.com", "--json")
	require.NoError(t, err)

	var decoded []domain.EventRecord
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Concert", decoded[0].Title)
}

func TestExtractCmd_NoEvents(t *testing.T) {
	restore := wireFakes(&fakeExtraction{}, &fakeSubmission{})
	defer restore()

	out, err := executeCommand(t, "extract", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "No events found on this page.")
}

func TestExtractCmd_PropagatesError(t *testing.T) {
	restore := wireFakes(&fakeExtraction{err: domain.ErrMissingCredential}, &fakeSubmission{})
	defer restore()

	_, err := executeCommand(t, "extract", "https://example.com")
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestAddCmd_InsertsAllEvents(t *testing.T) {
	submission := &fakeSubmission{}
	restore := wireFakes(&fakeExtraction{events: []domain.EventRecord{
		{Title: "One"}, {Title: "Two"},
	}}, submission)
	defer restore()

	out, err := executeCommand(t, "add", "https://example.com")
	require.NoError(t, err)

	assert.Len(t, submission.entries, 2)
	assert.Contains(t, out, `Added "One"`)
	assert.Contains(t, out, `Added "Two"`)
}

func TestAddCmd_IndexSelectsOneEvent(t *testing.T) {
	submission := &fakeSubmission{}
	restore := wireFakes(&fakeExtraction{events: []domain.EventRecord{
		{Title: "One"}, {Title: "Two"}, {Title: "Three"},
	}}, submission)
	defer restore()
	defer func() { addIndex = 0 }()

	out, err := executeCommand(t, "add", "https://example.com", "--index", "2")
	require.NoError(t, err)

	require.Len(t, submission.entries, 1)
	assert.Equal(t, "Two", submission.entries[0].Summary)
	assert.Contains(t, out, `Added "Two"`)
}

func TestAddCmd_IndexOutOfRange(t *testing.T) {
	restore := wireFakes(&fakeExtraction{events: []domain.EventRecord{{Title: "Only"}}}, &fakeSubmission{})
	defer restore()
	defer func() { addIndex = 0 }()

	_, err := executeCommand(t, "add", "https://example.com", "--index", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestAddCmd_SubmitFailure(t *testing.T) {
	restore := wireFakes(
		&fakeExtraction{events: []domain.EventRecord{{Title: "One"}}},
		&fakeSubmission{err: errors.New("quota exceeded")},
	)
	defer restore()

	_, err := executeCommand(t, "add", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `add "One"`)
}
