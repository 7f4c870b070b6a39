package capture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

func parse(t *testing.T, doc string) *domain.PageSnapshot {
	t.Helper()
	s, err := Snapshot(strings.NewReader(doc), "https://example.com/page")
	require.NoError(t, err)
	return s
}

func TestSnapshot_TitleAndURL(t *testing.T) {
	s := parse(t, `<html><head><title>Spring Fair</title></head><body>hello</body></html>`)

	assert.Equal(t, "Spring Fair", s.Title)
	assert.Equal(t, "https://example.com/page", s.URL)
}

func TestSnapshot_HeadMetadataCollectedButNotVisible(t *testing.T) {
	// Title, meta, and JSON-LD live inside head on real pages; the
	// walk must descend into head to collect them while keeping head
	// text out of the visible text.
	doc := `<html><head>
		<title>Spring Fair</title>
		<meta name="description" content="A fair">
		<script type="application/ld+json">{"@type":"Event","name":"Concert"}</script>
	</head><body><p>body text</p></body></html>`

	s := parse(t, doc)

	assert.Equal(t, "Spring Fair", s.Title)
	assert.Equal(t, "A fair", s.Meta.Description)
	require.Len(t, s.EventSchemaHints, 1)
	assert.Equal(t, "body text", s.VisibleText)
}

func TestSnapshot_VisibleTextExcludesNonContent(t *testing.T) {
	doc := `<html><head><title>t</title><style>p{color:red}</style></head><body>
		<p>Visible paragraph.</p>
		<script>var hidden = "script text";</script>
		<noscript>enable javascript</noscript>
		<div style="display: none">invisible div</div>
		<div style="visibility:hidden">also invisible</div>
		<span hidden>hidden span</span>
		<p>Second paragraph.</p>
	</body></html>`

	s := parse(t, doc)

	assert.Contains(t, s.VisibleText, "Visible paragraph.")
	assert.Contains(t, s.VisibleText, "Second paragraph.")
	assert.NotContains(t, s.VisibleText, "script text")
	assert.NotContains(t, s.VisibleText, "enable javascript")
	assert.NotContains(t, s.VisibleText, "invisible div")
	assert.NotContains(t, s.VisibleText, "also invisible")
	assert.NotContains(t, s.VisibleText, "hidden span")
	assert.NotContains(t, s.VisibleText, "color:red")
}

func TestSnapshot_WhitespaceCollapsed(t *testing.T) {
	s := parse(t, "<html><body><p>a\n\n   b\t\tc</p></body></html>")

	assert.Equal(t, "a b c", s.VisibleText)
}

func TestSnapshot_MetaInfo(t *testing.T) {
	doc := `<html><head>
		<meta name="Description" content="A fair">
		<meta name="KEYWORDS" content="fair,spring">
		<meta name="author" content="Town Hall">
		<meta property="og:title" content="Spring Fair 2024">
		<meta property="OG:Description" content="Annual fair">
		<meta name="viewport" content="width=device-width">
		<meta name="robots" content="noindex">
	</head><body></body></html>`

	s := parse(t, doc)

	assert.Equal(t, "A fair", s.Meta.Description)
	assert.Equal(t, "fair,spring", s.Meta.Keywords)
	assert.Equal(t, "Town Hall", s.Meta.Author)
	assert.Equal(t, "Spring Fair 2024", s.Meta.OGTitle)
	assert.Equal(t, "Annual fair", s.Meta.OGDescription)
}

func TestSnapshot_EventSchemaHints(t *testing.T) {
	doc := `<html><head>
		<script type="application/ld+json">{"@type":"Event","name":"Concert"}</script>
		<script type="application/ld+json">[{"@type":"Thing"},{"@type":"Event","name":"Play"}]</script>
		<script type="application/ld+json">{"@type":"Organization","name":"Acme"}</script>
		<script type="application/ld+json">{not valid json</script>
	</head><body></body></html>`

	s := parse(t, doc)

	require.Len(t, s.EventSchemaHints, 2)
	assert.Contains(t, s.EventSchemaHints[0], `"Concert"`)
	assert.Contains(t, s.EventSchemaHints[1], `"Play"`)
}

func TestSnapshot_JSONLDTextNotVisible(t *testing.T) {
	doc := `<html><body>
		<script type="application/ld+json">{"@type":"Event","name":"Concert"}</script>
		<p>page text</p>
	</body></html>`

	s := parse(t, doc)

	assert.Equal(t, "page text", s.VisibleText)
}

func TestCapVisibleText_Truncation(t *testing.T) {
	atCap := strings.Repeat("x", domain.VisibleTextCap)
	overCap := atCap + "y"

	assert.Equal(t, atCap, capVisibleText(atCap))
	assert.Equal(t, atCap+domain.TruncationMarker, capVisibleText(overCap))
}

func TestCapVisibleText_DoesNotSplitRunes(t *testing.T) {
	// 3-byte runes guarantee the cap lands mid-rune.
	text := strings.Repeat("€", domain.VisibleTextCap/3+10)

	capped := capVisibleText(text)

	assert.True(t, strings.HasSuffix(capped, domain.TruncationMarker))
	body := strings.TrimSuffix(capped, domain.TruncationMarker)
	assert.NotContains(t, body, "�")
	assert.LessOrEqual(t, len(body), domain.VisibleTextCap)
}

func TestStyleHidesElement(t *testing.T) {
	tests := []struct {
		style string
		want  bool
	}{
		{"display:none", true},
		{"display: none;", true},
		{"DISPLAY: NONE", true},
		{"visibility:hidden", true},
		{"color:red; visibility: hidden", true},
		{"display:block", false},
		{"visibility:visible", false},
		{"", false},
		{"border:none", false},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			assert.Equal(t, tt.want, styleHidesElement(tt.style))
		})
	}
}
