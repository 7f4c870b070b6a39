package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

func snapshot() *domain.PageSnapshot {
	return &domain.PageSnapshot{
		Title:       "Community Calendar",
		URL:         "https://example.com/events",
		VisibleText: "GopherCon Europe, June 16th, Berlin.",
	}
}

func TestBuild_EmbedsTitleAndURL(t *testing.T) {
	got := Build(snapshot())

	assert.Contains(t, got, "Page Title: Community Calendar")
	assert.Contains(t, got, "Page URL: https://example.com/events")
	assert.Contains(t, got, "GopherCon Europe, June 16th, Berlin.")
}

func TestBuild_InstructsJSONArrayOnly(t *testing.T) {
	got := Build(snapshot())

	assert.Contains(t, got, "Respond with a JSON array of events.")
	assert.Contains(t, got, "If no events are found, return an empty array: []")
	assert.Contains(t, got, "ONLY the JSON array")
}

func TestBuild_OmitsHintSectionWhenEmpty(t *testing.T) {
	got := Build(snapshot())

	assert.NotContains(t, got, "Event Schema Data:")
}

func TestBuild_EmbedsHintsWhenPresent(t *testing.T) {
	s := snapshot()
	s.EventSchemaHints = []string{`{"@type":"Event","name":"GopherCon"}`}

	got := Build(s)

	assert.Contains(t, got, "Event Schema Data:")
	assert.Contains(t, got, `"@type": "Event"`)
	assert.Contains(t, got, `"name": "GopherCon"`)
}

func TestBuild_CapsVisibleText(t *testing.T) {
	s := snapshot()
	s.VisibleText = strings.Repeat("a", VisibleTextLimit+5000)

	got := Build(s)

	// The embedded text section never exceeds the prompt-time cap,
	// regardless of capture-stage length.
	assert.NotContains(t, got, strings.Repeat("a", VisibleTextLimit+1))
	assert.Contains(t, got, strings.Repeat("a", VisibleTextLimit))
}

func TestBuild_ExactlyAtCapIsUntouched(t *testing.T) {
	s := snapshot()
	s.VisibleText = strings.Repeat("b", VisibleTextLimit)

	got := Build(s)

	assert.Contains(t, got, s.VisibleText)
}

func TestBuild_CapDoesNotSplitRunes(t *testing.T) {
	s := snapshot()
	s.VisibleText = strings.Repeat("é", VisibleTextLimit) // 2 bytes each

	got := Build(s)

	require.True(t, strings.Contains(got, "Visible Text Content:\n"))
	section := strings.SplitN(got, "Visible Text Content:\n", 2)[1]
	section = strings.SplitN(section, "\n\n", 2)[0]
	assert.LessOrEqual(t, len(section), VisibleTextLimit)
	assert.NotContains(t, section, "�")
}

func TestBuild_Deterministic(t *testing.T) {
	s := snapshot()
	s.EventSchemaHints = []string{`{"@type":"Event"}`, `[{"@type":"Event"}]`}

	assert.Equal(t, Build(s), Build(s))
}
