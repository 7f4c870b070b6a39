// Package capture reads a live web page and produces the immutable
// snapshot the extraction pipeline works from.
package capture

import (
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// metaNames is the fixed recognised set of meta tag names.
// Matching is case-insensitive; anything else is ignored.
var metaNames = map[string]struct{}{
	"description":    {},
	"keywords":       {},
	"author":         {},
	"og:title":       {},
	"og:description": {},
}

// skippedElements never contribute visible text.
var skippedElements = map[atom.Atom]struct{}{
	atom.Script:   {},
	atom.Style:    {},
	atom.Noscript: {},
	atom.Head:     {},
	atom.Svg:      {},
	atom.Template: {},
	atom.Iframe:   {},
}

// Snapshot parses an HTML document and builds its page snapshot.
// The URL is recorded as-is; it is not re-fetched or validated here.
func Snapshot(r io.Reader, url string) (*domain.PageSnapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	s := &domain.PageSnapshot{URL: url}
	var text strings.Builder
	walk(doc, s, &text, true)
	s.VisibleText = capVisibleText(collapseWhitespace(text.String()))

	return s, nil
}

// walk traverses the DOM once, collecting title, meta info, JSON-LD
// event hints, and visible text. Excluded subtrees (head, script,
// hidden elements) are still descended into with text accumulation
// switched off: title, meta tags, and JSON-LD blocks live inside head,
// so pruning would lose them.
func walk(n *html.Node, s *domain.PageSnapshot, text *strings.Builder, visible bool) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Title:
			if s.Title == "" {
				s.Title = strings.TrimSpace(textContent(n))
			}
		case atom.Meta:
			collectMeta(n, &s.Meta)
		case atom.Script:
			if strings.EqualFold(attr(n, "type"), "application/ld+json") {
				collectEventHint(textContent(n), s)
			}
		}

		if skipElement(n) {
			visible = false
		}
	}

	if visible && n.Type == html.TextNode {
		text.WriteString(n.Data)
		text.WriteString(" ")
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, s, text, visible)
	}
}

// skipElement reports whether an element and its subtree are excluded
// from visible text: non-content tags, hidden attribute, or an inline
// style hiding the element.
func skipElement(n *html.Node) bool {
	if _, ok := skippedElements[n.DataAtom]; ok {
		return true
	}
	if hasAttr(n, "hidden") {
		return true
	}
	return styleHidesElement(attr(n, "style"))
}

// styleHidesElement checks an inline style for display:none or
// visibility:hidden. Computed styles are not available outside a
// browser; inline declarations are the observable equivalent.
func styleHidesElement(style string) bool {
	if style == "" {
		return false
	}
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.ToLower(strings.TrimSpace(value))
		if prop == "display" && value == "none" {
			return true
		}
		if prop == "visibility" && value == "hidden" {
			return true
		}
	}
	return false
}

// collectMeta records a recognised meta tag. The name attribute wins
// over property when both are present, matching browser behaviour for
// standard metadata.
func collectMeta(n *html.Node, meta *domain.MetaInfo) {
	name := attr(n, "name")
	if name == "" {
		name = attr(n, "property")
	}
	content := attr(n, "content")
	if name == "" || content == "" {
		return
	}

	key := strings.ToLower(name)
	if _, ok := metaNames[key]; !ok {
		return
	}

	switch key {
	case "description":
		meta.Description = content
	case "keywords":
		meta.Keywords = content
	case "author":
		meta.Author = content
	case "og:title":
		meta.OGTitle = content
	case "og:description":
		meta.OGDescription = content
	}
}

// collectEventHint keeps a JSON-LD block when its declared type is
// "Event", or it is an array containing at least one Event. Malformed
// JSON is silently skipped: hints are best-effort enrichment.
func collectEventHint(raw string, s *domain.PageSnapshot) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return
	}

	if isEventValue(parsed) {
		s.EventSchemaHints = append(s.EventSchemaHints, raw)
	}
}

func isEventValue(v any) bool {
	switch val := v.(type) {
	case map[string]any:
		t, _ := val["@type"].(string)
		return t == "Event"
	case []any:
		for _, item := range val {
			if obj, ok := item.(map[string]any); ok {
				if t, _ := obj["@type"].(string); t == "Event" {
					return true
				}
			}
		}
	}
	return false
}

// capVisibleText applies the capture-stage cap with the truncation
// marker. Text exactly at the cap is left untouched.
func capVisibleText(text string) string {
	if len(text) <= domain.VisibleTextCap {
		return text
	}
	capped := domain.VisibleTextCap
	for capped > 0 && text[capped]&0xC0 == 0x80 { // do not split a rune
		capped--
	}
	return text[:capped] + domain.TruncationMarker
}

// collapseWhitespace reduces runs of whitespace to single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return true
		}
	}
	return false
}
